package helpers

import "github.com/taxdesk/tax-service/internal/constants"

// Stage constants define the environments the service runs in.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}

// IsDeployedStage reports whether credentials come from AWS rather than the local environment.
func IsDeployedStage(stage string) bool {
	return stage == StageProd || stage == StageDev
}
