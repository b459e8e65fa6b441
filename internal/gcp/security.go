package gcp

import (
	"context"
	"fmt"

	cloudkms "google.golang.org/api/cloudkms/v1"
	iam "google.golang.org/api/iam/v1"
	secretmanager "google.golang.org/api/secretmanager/v1"
)

type iamClient struct {
	svc *iam.Service
}

var _ IAMService = (*iamClient)(nil)

func (c *iamClient) ListServiceAccounts(ctx context.Context, projectID string) ([]*iam.ServiceAccount, error) {
	resp, err := c.svc.Projects.ServiceAccounts.List("projects/" + projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

type kmsClient struct {
	svc *cloudkms.Service
}

var _ KMSService = (*kmsClient)(nil)

func (c *kmsClient) ListKeyRings(ctx context.Context, projectID, location string) ([]*cloudkms.KeyRing, error) {
	parent := fmt.Sprintf("projects/%s/locations/%s", projectID, location)
	resp, err := c.svc.Projects.Locations.KeyRings.List(parent).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.KeyRings, nil
}

func (c *kmsClient) ListCryptoKeys(ctx context.Context, keyRing string) ([]*cloudkms.CryptoKey, error) {
	resp, err := c.svc.Projects.Locations.KeyRings.CryptoKeys.List(keyRing).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.CryptoKeys, nil
}

type secretsClient struct {
	svc *secretmanager.Service
}

var _ SecretService = (*secretsClient)(nil)

func (c *secretsClient) ListSecrets(ctx context.Context, projectID string) ([]*secretmanager.Secret, error) {
	resp, err := c.svc.Projects.Secrets.List("projects/" + projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Secrets, nil
}
