package taxonomy

// Name lists for the software-engineering ontology this tool grew up
// around. Default wires them into a ready-to-use table; callers with
// their own lists use Build or LoadFile instead.
var (
	DefaultAgents = []string{
		"ProductManager", "Engineer", "Architect", "Tester",
		"DevOps", "BusinessAnalyst", "ProjectManager",
	}

	DefaultDocuments = []string{
		"Requirement", "DesignSpec", "Plan", "UserStory",
		"AcceptanceCriteria", "ImplementationPlan", "TestCase",
		"UnitTest", "TestResult", "Feature", "Risk", "ChangeRequest",
		"ProjectStructure", "Standard", "TechnologyStack", "Persona",
		"Observation", "DataModel", "Command", "Environment",
	}

	DefaultCode = []string{"Code", "SourceFile"}
)

// Default returns the built-in software-engineering taxonomy. Anything
// outside these lists (methodologies, concepts, SoftwareApplication and
// friends) classifies as Other.
func Default() *Taxonomy {
	t, err := Build(DefaultAgents, DefaultDocuments, DefaultCode)
	if err != nil {
		panic("taxonomy: built-in name lists overlap: " + err.Error())
	}
	return t
}
