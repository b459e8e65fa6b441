// Package main implements the cataziza deployment CLI.
// It drives phased Terraform rollouts, rollbacks, verification suites,
// and health checks for the platform's GCP infrastructure.
package main

import "github.com/catherinevee/terraform-gcp-sub000/cmd/cataziza/cmd"

func main() {
	cmd.Execute()
}
