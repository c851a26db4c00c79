package presets

import (
	"fmt"
	"sort"

	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/prompt"
)

// DocumentPreset describes a registered full-document template.
type DocumentPreset struct {
	Name        string
	Description string
	Build       func() *prompt.Builder
}

// documentPresets maps preset names to their constructors.
var documentPresets = map[string]DocumentPreset{
	"market-assessment": {
		Name:        "market-assessment",
		Description: "Multi-role market assessment for a late-stage pharmaceutical asset",
		Build:       MarketAssessment,
	},
	"data-analysis": {
		Name:        "data-analysis",
		Description: "Healthcare data analysis plan over OMOP CDM sources",
		Build:       DataAnalysisPlan,
	},
}

// List returns all registered document presets sorted by name.
func List() []DocumentPreset {
	out := make([]DocumentPreset, 0, len(documentPresets))
	for _, p := range documentPresets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get looks up a document preset by name.
func Get(name string) (DocumentPreset, error) {
	p, ok := documentPresets[name]
	if !ok {
		return DocumentPreset{}, fmt.Errorf("unknown preset %q", name)
	}
	return p, nil
}

// MarketAssessment assembles the full multi-branch market assessment
// document: organizational context, research context, the four analytical
// branches, leading questions, and reporting requirements.
func MarketAssessment() *prompt.Builder {
	medicalAffairs := prompt.NewDepartment("Medical Affairs").
		SetMission("Bridge clinical science and real-world practice.").
		AddFunction("Evidence generation").
		AddFunction("Scientific communication").
		AddExpertiseArea("Real-world evidence").
		AddRole(prompt.NewRole("Epidemiologist").
			SetExpertise("OMOP CDM").
			AddResponsibility("Define study populations and outcomes").
			AddFocusArea("Incidence, prevalence, and treatment pathways")).
		AddRole(prompt.NewRole("Medical domain expert").
			SetExpertise("Disease area and treatment landscape").
			AddResponsibility("Surface the unmet medical needs"))

	dataScience := prompt.NewDepartment("Data Science").
		SetMission("Turn observational data into decision-grade analysis.").
		AddFunction("Analytical tooling and pipelines").
		AddRole(prompt.NewRole("Developer").
			SetExpertise("Healthcare data engineering").
			AddResponsibility("Design and implement the analysis method"))

	return prompt.NewBuilder("Drug X Market Assessment").
		AddDepartment(medicalAffairs).
		AddDepartment(dataScience).
		SetContext(MedicalResearchContext().
			AddInfo("Industry Background", DrugDevelopmentOverview())).
		AddBranch(DomainExpertBranch()).
		AddBranch(EpidemiologistBranch()).
		AddBranch(DeveloperBranch()).
		AddBranch(DirectorBranch()).
		AddQuestion(EpidemiologicalQuestion("What is the incidence and prevalence of the target condition?")).
		AddQuestion(ClinicalQuestion("Where does the current standard of care fall short?")).
		AddQuestion(TechnicalQuestion("Which OMOP CDM tables and vocabularies does the analysis require?")).
		AddRequirement(AnalyticalRequirement("Quantify the addressable patient population with confidence intervals")).
		AddRequirement(ComplianceRequirement("Use only de-identified, privacy-compliant data sources")).
		AddRequirement(PresentationRequirement("Summarize findings for a non-technical leadership audience")).
		SetApproach("Work branch by branch in priority order, letting each role refine the questions of the previous one before answering.").
		SetOutputFormat("A structured report with one section per branch, each ending in concrete, prioritized recommendations.")
}

// DataAnalysisPlan assembles a leaner document focused on the technical
// analysis of healthcare data.
func DataAnalysisPlan() *prompt.Builder {
	return prompt.NewBuilder("Healthcare Data Analysis Plan").
		AddRole(prompt.NewRole("Epidemiologist").
			SetExpertise("Observational study design").
			AddFocusArea("Cohort definitions and bias control")).
		AddRole(prompt.NewRole("Developer").
			SetExpertise("OMOP CDM tooling").
			AddFocusArea("Reproducible analysis pipelines")).
		SetContext(DataAnalysisContext()).
		AddBranch(EpidemiologistBranch()).
		AddBranch(DeveloperBranch()).
		AddQuestion(TechnicalQuestion("Which data quality checks must run before analysis?")).
		AddRequirement(AnalyticalRequirement("Document every cohort definition as executable logic")).
		SetOutputFormat("A step-by-step analysis protocol with tooling choices justified inline.")
}
