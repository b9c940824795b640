// Package gcp reads Application Default Credentials and checks that they can be used.
//
// The credentials file is owned by gcloud and is only ever read. The package recognises
// the impersonated_service_account format written by
//
//	gcloud auth application-default login --impersonate-service-account=<email>
//
// and extracts the impersonated account from its service_account_impersonation_url:
//
//	https://iamcredentials.googleapis.com/v1/projects/-/serviceAccounts/<email>:generateAccessToken
//
// Environment Variables:
//   - GOOGLE_APPLICATION_CREDENTIALS: path to the ADC JSON file, exported by SetCredentialsEnv
//   - CLOUDSDK_CONFIG: gcloud config directory, used to locate the default ADC file
package gcp
