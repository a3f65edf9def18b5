// Package estimate - CI/CD pipeline costs
package estimate

import (
	"fmt"

	"archcost/core/pricing"
	"archcost/core/types"
)

// minutesPerBuild is the assumed average build duration
const minutesPerBuild = 10

// cicdCost prices the build pipeline block
func cicdCost(t *pricing.Table, cfg types.CICDConfig, reqs map[string]string) float64 {
	var cost float64

	switch cfg.Provider {
	case "github_actions":
		minutes := cfg.BuildsPerMonth * minutesPerBuild
		cost = float64(minutes) * t.Price("cicd", "github_actions_linux_minute")
		reqs["CI/CD"] = fmt.Sprintf("GitHub Actions (%d builds/mo)", cfg.BuildsPerMonth)

	case "gitlab_ci":
		minutes := cfg.BuildsPerMonth * minutesPerBuild
		cost = float64(minutes) * t.Price("cicd", "gitlab_ci_minute")
		reqs["CI/CD"] = fmt.Sprintf("GitLab CI (%d builds/mo)", cfg.BuildsPerMonth)

	case "jenkins":
		cost = t.Price("cicd", "jenkins_m5_large")
		reqs["CI/CD"] = "Jenkins m5.large"
	}

	if cfg.ContainerRegistry {
		// Assume 50GB of images
		cost += 50 * t.Price("cicd", "ecr_storage_gb")
		reqs["Container Registry"] = "50 GB"
	}

	if cfg.SecurityScanning {
		// Assume 5 active developers
		cost += 5 * t.Price("cicd", "code_scanning_user")
		reqs["Security Scan"] = "5 users"
	}

	if cfg.ArtifactStorageGB > 0 {
		cost += cfg.ArtifactStorageGB * t.Price("cicd", "artifact_storage_gb")
		reqs["Artifacts"] = fmt.Sprintf("%g GB", cfg.ArtifactStorageGB)
	}

	return cost
}
