package presets

import "fmt"

// Narrative context snippets about the pharmaceutical industry environment.
// Each snippet is a fixed text block meant to ground LLM responses in the
// constraints and objectives of typical pharma work; they attach to a
// document as Context background or additional info.

// Snippet is a named narrative context block.
type Snippet struct {
	Name string
	Text string
}

// ContextSnippets returns all narrative snippets in a stable order.
func ContextSnippets() []Snippet {
	return []Snippet{
		{Name: "drug-development", Text: DrugDevelopmentOverview()},
		{Name: "regulatory", Text: RegulatoryBasics()},
		{Name: "gxp", Text: GxPQualitySystems()},
		{Name: "commercialization", Text: CommercializationConcepts()},
		{Name: "stakeholders", Text: StakeholderOverview()},
	}
}

// GetSnippet looks up a context snippet by name.
func GetSnippet(name string) (Snippet, error) {
	for _, s := range ContextSnippets() {
		if s.Name == name {
			return s, nil
		}
	}
	return Snippet{}, fmt.Errorf("unknown snippet %q", name)
}

// DrugDevelopmentOverview describes the typical drug development lifecycle.
func DrugDevelopmentOverview() string {
	return "CONTEXT: DRUG DEVELOPMENT LIFECYCLE\n" +
		"Pharmaceutical drug development is a lengthy, costly, and high-risk process structured in distinct phases:\n" +
		"- Preclinical: Initial research, lab/animal testing to assess basic safety and biological activity.\n" +
		"- Clinical Trials (Phase I, II, III): Increasingly large human studies to evaluate safety, dosing, efficacy, and side effects.\n" +
		"- Submission: Compiling comprehensive data into a dossier for regulatory review (e.g., NDA/BLA in US, MAA in EU).\n" +
		"- Approval & Post-Market: Ongoing safety monitoring, potentially Phase IV studies, and lifecycle management.\n" +
		"Development is milestone-driven, guided by a Target Product Profile, suffers high attrition, and requires cross-functional integration.\n" +
		"Constraint: Adherence to the structured process and generation of robust evidence are paramount."
}

// RegulatoryBasics describes the role of regulatory agencies.
func RegulatoryBasics() string {
	return "CONTEXT: PHARMACEUTICAL REGULATORY ENVIRONMENT\n" +
		"Regulatory agencies (e.g., FDA in US, EMA in EU) evaluate pharmaceutical products on submitted scientific evidence for safety, efficacy, and quality before market access.\n" +
		"Decisions rest on evidence-based review, benefit-risk assessment, strict compliance (GxP), and agency-controlled labeling.\n" +
		"Companies engage agencies throughout development for guidance and submit formal applications for approval.\n" +
		"Constraint: Agency approval is non-negotiable for marketing a drug."
}

// GxPQualitySystems describes the GxP quality guidelines.
func GxPQualitySystems() string {
	return "CONTEXT: GXP QUALITY SYSTEMS\n" +
		"GxP refers to 'Good Practice' regulations ensuring product quality, data integrity, and patient safety:\n" +
		"- GLP governs non-clinical safety studies.\n" +
		"- GCP governs the conduct and reporting of clinical trials involving human subjects.\n" +
		"- GMP governs manufacturing to ensure identity, strength, quality, and purity.\n" +
		"Processes must be defined, validated, documented, and consistently followed; deviations are investigated.\n" +
		"Constraint: All relevant activities must operate under the applicable GxP framework."
}

// CommercializationConcepts describes market access and value demonstration.
func CommercializationConcepts() string {
	return "CONTEXT: PHARMACEUTICAL COMMERCIALIZATION & MARKET ACCESS\n" +
		"Commercialization brings an approved drug to patients and extends beyond clinical efficacy:\n" +
		"- Market Access: Securing reimbursement and formulary placement from payers.\n" +
		"- Value Demonstration: Articulating clinical, economic (HEOR), and humanistic value with supporting evidence.\n" +
		"- Commercial Strategy and Launch Excellence: Segmentation, positioning, and coordinated cross-functional introduction.\n" +
		"Constraint: Regulatory approval does not guarantee commercial success; value must be demonstrated to payers and prescribers."
}

// StakeholderOverview describes the key pharma stakeholders.
func StakeholderOverview() string {
	return "CONTEXT: KEY PHARMACEUTICAL STAKEHOLDERS\n" +
		"The ecosystem involves stakeholders with distinct needs and influence:\n" +
		"- Patients: concerned with effectiveness, safety, quality of life, and access.\n" +
		"- Healthcare Professionals: prescribers deciding on clinical evidence and guidelines.\n" +
		"- Payers: focused on cost-effectiveness and budget impact for reimbursement decisions.\n" +
		"- Regulatory Agencies: ensuring safety, efficacy, and quality.\n" +
		"- Key Opinion Leaders: experts shaping practice through research and guidelines.\n" +
		"- Internal Teams: cross-functional groups across the drug lifecycle.\n" +
		"Constraint: Decisions balance competing stakeholder interests; evidence must be tailored to each group."
}
