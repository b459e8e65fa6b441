package gcp

// requiredAPIs are the services the platform cannot run without.
var requiredAPIs = []string{
	"compute.googleapis.com",
	"container.googleapis.com",
	"run.googleapis.com",
	"cloudfunctions.googleapis.com",
	"sqladmin.googleapis.com",
	"redis.googleapis.com",
	"bigquery.googleapis.com",
	"storage.googleapis.com",
	"pubsub.googleapis.com",
	"cloudscheduler.googleapis.com",
	"iam.googleapis.com",
	"cloudkms.googleapis.com",
	"secretmanager.googleapis.com",
	"logging.googleapis.com",
	"monitoring.googleapis.com",
	"artifactregistry.googleapis.com",
	"servicenetworking.googleapis.com",
}

// RequiredAPIs returns the APIs every environment must have enabled.
func RequiredAPIs() []string {
	out := make([]string, len(requiredAPIs))
	copy(out, requiredAPIs)
	return out
}
