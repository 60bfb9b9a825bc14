package deadline

// preclusionTemporal is the only preclusion type this engine derives; it is a
// pure function of the already-computed procedural deadline.
const preclusionTemporal = "temporal"

// timeBar is one row of the substantive time-bar table.
type timeBar struct {
	prescription *Basis
	decadence    *Basis
}

// timeBars maps LegalContext.ActionType to its statutory prescription or
// decadence period.  Informational output only; the claim's origin date is
// outside this engine's scope, so no elapsed time is computed.
var timeBars = map[string]timeBar{
	"personal-right": {
		prescription: &Basis{Years: 10, Citation: "CC art. 205",
			Note: "general prescription for personal rights"},
	},
	"civil-liability": {
		prescription: &Basis{Years: 3, Citation: "CC art. 206, §3º, V",
			Note: "civil reparation claims"},
	},
	"annulment": {
		decadence: &Basis{Years: 2, Citation: "CC art. 179",
			Note: "annulment of legal acts"},
	},
	"rescission": {
		decadence: &Basis{Years: 2, Citation: "CPC art. 975",
			Note: "ação rescisória"},
	},
}

// AnalyzeLegalEffects derives preclusion from the remaining business-day
// count and looks up the informational prescription/decadence basis for the
// given context.  A nil or unknown context yields preclusion analysis only.
func AnalyzeLegalEffects(remaining int, legalContext *LegalContext) LegalEffect {
	effect := LegalEffect{}
	if remaining < 0 {
		effect.PreclusionOccurred = true
		effect.PreclusionType = preclusionTemporal
	}
	if legalContext == nil {
		return effect
	}
	if bar, ok := timeBars[legalContext.ActionType]; ok {
		effect.PrescriptionBasis = bar.prescription
		effect.DecadenceBasis = bar.decadence
	}
	return effect
}

//Personal.AI order the ending
