// Package presets holds static factory templates that return pre-populated
// prompt nodes and documents for life-science analytical work. Presets add
// no rendering logic of their own; they are plain data producers on top of
// the prompt package.
package presets

import "github.com/A1exanderAlexeyuk/LlmPrompts/internal/prompt"

// AnalysisThought returns an analysis-typed thought with the given order.
func AnalysisThought(content string, order int) *prompt.Thought {
	return prompt.NewThought(content).
		SetType(prompt.ThoughtAnalysis).
		SetOrder(order).
		AddTag("analysis")
}

// ConsiderationThought returns a consideration-typed thought with the given order.
func ConsiderationThought(content string, order int) *prompt.Thought {
	return prompt.NewThought(content).
		SetOrder(order).
		AddTag("consideration")
}

// RecommendationThought returns a recommendation-typed thought with the given order.
func RecommendationThought(content string, order int) *prompt.Thought {
	return prompt.NewThought(content).
		SetType(prompt.ThoughtRecommendation).
		SetOrder(order).
		AddTag("recommendation")
}

// LimitationThought returns a limitation-typed thought with the given order.
func LimitationThought(content string, order int) *prompt.Thought {
	return prompt.NewThought(content).
		SetType(prompt.ThoughtLimitation).
		SetOrder(order).
		AddTag("limitation").
		AddTag("constraint")
}

// EpidemiologicalQuestion returns an analytical question in the epidemiology category.
func EpidemiologicalQuestion(text string) *prompt.Question {
	return prompt.NewQuestion(text).
		SetType(prompt.QuestionAnalytical).
		SetCategory(prompt.CategoryEpidemiology).
		AddTag("epidemiology").
		AddTag("population health")
}

// ClinicalQuestion returns a diagnostic question in the clinical category.
func ClinicalQuestion(text string) *prompt.Question {
	return prompt.NewQuestion(text).
		SetType(prompt.QuestionDiagnostic).
		SetCategory(prompt.CategoryClinical).
		AddTag("clinical").
		AddTag("treatment").
		AddTag("diagnosis")
}

// TechnicalQuestion returns a technical question in the technical category.
func TechnicalQuestion(text string) *prompt.Question {
	return prompt.NewQuestion(text).
		SetType(prompt.QuestionTechnical).
		SetCategory(prompt.CategoryTechnical).
		AddTag("technical").
		AddTag("implementation").
		AddTag("data")
}

// AnalyticalRequirement returns an analytical requirement at the default priority.
func AnalyticalRequirement(description string) *prompt.Requirement {
	return prompt.NewRequirement(description).
		SetType(prompt.RequirementAnalytical).
		AddTag("analysis").
		AddTag("methodology")
}

// ComplianceRequirement returns a critical compliance requirement.
func ComplianceRequirement(description string) *prompt.Requirement {
	return prompt.NewRequirement(description).
		SetType(prompt.RequirementCompliance).
		SetPriority(prompt.PriorityCritical).
		AddTag("compliance").
		AddTag("regulatory")
}

// PresentationRequirement returns a presentation requirement at the default priority.
func PresentationRequirement(description string) *prompt.Requirement {
	return prompt.NewRequirement(description).
		SetType(prompt.RequirementPresentation).
		AddTag("format").
		AddTag("presentation").
		AddTag("structure")
}

// MedicalResearchContext returns a context template for pharmaceutical
// research around a late-stage asset.
func MedicalResearchContext() *prompt.Context {
	return prompt.NewContext().
		SetBackground("The company is developing an innovative drug with proven efficacy in phase III clinical trials.").
		SetDomain("Pharmaceutical research").
		AddResource("OMOP CDM data").
		AddResource("Phase III clinical trial results").
		AddStakeholder("Medical Affairs department").
		AddStakeholder("Data Science team").
		AddStakeholder("Clinical researchers")
}

// DataAnalysisContext returns a context template for large-scale healthcare
// data analysis.
func DataAnalysisContext() *prompt.Context {
	return prompt.NewContext().
		SetBackground("Analysis of large-scale healthcare data to identify patterns and insights.").
		SetDomain("Healthcare data analytics").
		AddResource("OMOP Common Data Model").
		AddResource("Electronic Health Records").
		AddResource("Claims data").
		AddConstraint("Data privacy regulations (HIPAA/GDPR)").
		AddConstraint("Limited access to patient-level data")
}

// DomainExpertBranch returns the branch template in which a medical domain
// expert surfaces the most important domain-specific problems.
func DomainExpertBranch() *prompt.Branch {
	return prompt.NewBranch("Domain Expert Analysis").
		SetDescription("Identifying the most important domain-specific problems that need to be addressed.").
		SetOwner("Medical domain expert").
		SetPriority(5).
		AddTag("domain expertise").
		AddTag("medical").
		AddThought(AnalysisThought("The most important questions regarding the epidemiology of the disease", 1)).
		AddThought(AnalysisThought("Questions regarding problems with the current approach to treatment", 2)).
		AddThought(AnalysisThought("Medical unmet needs requiring attention and research", 3))
}

// EpidemiologistBranch returns the branch template in which an
// epidemiologist reframes domain questions for OMOP data.
func EpidemiologistBranch() *prompt.Branch {
	return prompt.NewBranch("Epidemiological Analysis").
		SetDescription("Modifying domain expert questions and forming scientific and epidemiological questions for OMOP data.").
		SetOwner("Epidemiologist").
		SetPriority(4).
		AddTag("epidemiology").
		AddTag("methodology").
		AddThought(prompt.NewThought("Forming important epidemiological questions based on the current state of affairs from the literature review").
			SetType(prompt.ThoughtMethodology).SetOrder(1)).
		AddThought(AnalysisThought("Translating domain expert questions into epidemiological questions", 2)).
		AddThought(prompt.NewThought("Forming requirements for analysis").
			SetType(prompt.ThoughtMethodology).SetOrder(3))
}

// DeveloperBranch returns the branch template in which a developer designs
// the technical analysis method.
func DeveloperBranch() *prompt.Branch {
	return prompt.NewBranch("Technical Implementation").
		SetDescription("Forming a detailed method for performing analysis.").
		SetOwner("Developer").
		SetPriority(3).
		AddTag("technical").
		AddTag("implementation").
		AddTag("methodology").
		AddThought(RecommendationThought("The most suitable tools for analysis", 1)).
		AddThought(prompt.NewThought("Programmatic approaches for analysis").
			SetType(prompt.ThoughtMethodology).SetOrder(2)).
		AddThought(prompt.NewThought("Forming the structure of analysis").
			SetType(prompt.ThoughtMethodology).SetOrder(3))
}

// DirectorBranch returns the branch template in which a senior director
// coordinates the other branches.
func DirectorBranch() *prompt.Branch {
	return prompt.NewBranch("Strategic Coordination").
		SetDescription("Director performs a coordinating function and asks leading questions.").
		SetOwner("Senior Director").
		SetPriority(5).
		AddTag("coordination").
		AddTag("strategy").
		AddTag("oversight").
		AddThought(prompt.NewThought("To the domain expert for focusing").
			SetType(prompt.ThoughtQuestion).SetOrder(1)).
		AddThought(AnalysisThought("Prioritizes the epidemiologist's questions", 2)).
		AddThought(RecommendationThought("Infrastructure assistance to the developer", 3))
}
