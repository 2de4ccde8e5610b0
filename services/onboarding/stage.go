package onboarding

import "fmt"

// Stage is a wizard step, numbered from 1
type Stage int

const (
	StagePersonalInfo Stage = iota + 1
	StageIdentification
	StageVehicleDetails
	StageWorkPreferences
	StageAgreement
)

// Stage bounds
const (
	FirstStage = StagePersonalInfo
	LastStage  = StageAgreement
	StageCount = int(LastStage)
)

var stageNames = map[Stage]string{
	StagePersonalInfo:    "Personal Information",
	StageIdentification:  "Identification",
	StageVehicleDetails:  "Vehicle Details",
	StageWorkPreferences: "Work Preferences",
	StageAgreement:       "Agreement",
}

// Valid reports whether s lies within [FirstStage, LastStage]
func (s Stage) Valid() bool {
	return s >= FirstStage && s <= LastStage
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Stages lists every stage in order
func Stages() []Stage {
	stages := make([]Stage, 0, StageCount)
	for s := FirstStage; s <= LastStage; s++ {
		stages = append(stages, s)
	}
	return stages
}
