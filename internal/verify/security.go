package verify

import (
	"context"
	"fmt"
	"path"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"
)

func securitySuite() Suite {
	return Suite{
		Name: "security",
		Checks: []Check{
			{Name: "KMS key rings and keys", Critical: true, Fn: checkKMSKeys},
			{Name: "KMS key rotation", Fn: checkKeyRotation},
			{Name: "secrets provisioned", Fn: checkSecrets},
		},
	}
}

func checkKMSKeys(ctx context.Context, h *Harness) error {
	rings, err := h.Clients.KMS.ListKeyRings(ctx, h.Cfg.ProjectID, h.Cfg.Region)
	if err != nil {
		return apperrors.NewVerificationError("failed to list key rings", err)
	}
	if len(rings) < h.Expect.MinKeyRings {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d key rings in %s, want at least %d",
				len(rings), h.Cfg.Region, h.Expect.MinKeyRings), nil)
	}
	for _, ring := range rings {
		keys, err := h.Clients.KMS.ListCryptoKeys(ctx, ring.Name)
		if err != nil {
			return apperrors.NewVerificationError(
				fmt.Sprintf("failed to list keys in %s", path.Base(ring.Name)), err)
		}
		if len(keys) == 0 {
			return apperrors.NewVerificationError(
				fmt.Sprintf("key ring %s has no keys", path.Base(ring.Name)), nil)
		}
	}
	return nil
}

func checkKeyRotation(ctx context.Context, h *Harness) error {
	rings, err := h.Clients.KMS.ListKeyRings(ctx, h.Cfg.ProjectID, h.Cfg.Region)
	if err != nil {
		return apperrors.NewVerificationError("failed to list key rings", err)
	}
	for _, ring := range rings {
		keys, err := h.Clients.KMS.ListCryptoKeys(ctx, ring.Name)
		if err != nil {
			return apperrors.NewVerificationError(
				fmt.Sprintf("failed to list keys in %s", path.Base(ring.Name)), err)
		}
		for _, key := range keys {
			if key.Purpose == "ENCRYPT_DECRYPT" && key.RotationPeriod == "" {
				return apperrors.NewVerificationError(
					fmt.Sprintf("key %s has no rotation period", path.Base(key.Name)), nil)
			}
		}
	}
	return nil
}

func checkSecrets(ctx context.Context, h *Harness) error {
	secrets, err := h.Clients.Secrets.ListSecrets(ctx, h.Cfg.ProjectID)
	if err != nil {
		return apperrors.NewVerificationError("failed to list secrets", err)
	}
	if len(secrets) < h.Expect.MinSecrets {
		return apperrors.NewVerificationError(
			fmt.Sprintf("found %d secrets, want at least %d", len(secrets), h.Expect.MinSecrets), nil)
	}
	return nil
}
