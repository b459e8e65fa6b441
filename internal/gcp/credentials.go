package gcp

import (
	"context"
	"errors"
	"net/http"

	"github.com/catherinevee/terraform-gcp-sub000/internal/constants"
	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// ValidateCredentials confirms application default credentials resolve
// before any cloud operation runs. The lookup can reach out to the GCE
// metadata server, so it is bounded. Returns the credential project ID
// when the credentials carry one, or empty.
func ValidateCredentials(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.APICallTimeout)
	defer cancel()

	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return "", apperrors.NewCredentialsError(
			"no application default credentials found, run 'gcloud auth application-default login'", err)
	}
	return creds.ProjectID, nil
}

// IsNotFound reports whether err is a GCP API 404.
func IsNotFound(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound
	}
	return false
}

// IsPermissionDenied reports whether err is a GCP API 403.
func IsPermissionDenied(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusForbidden
	}
	return false
}
