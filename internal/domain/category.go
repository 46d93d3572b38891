package domain

// Category is the scenario classification label. The classifier is
// constrained to this fixed set; anything else is treated as a
// classification failure and replaced with DefaultCategory.
type Category string

const (
	CategoryGeneral         Category = "general"
	CategoryCoding          Category = "coding"
	CategoryDevops          Category = "devops"
	CategoryDataEngineering Category = "data-engineering"
	CategorySecurity        Category = "security"
	CategoryArchitecture    Category = "architecture"
	CategoryProduct         Category = "product"
	CategoryResearch        Category = "research"
	CategoryWriting         Category = "writing"
	CategoryPlanning        Category = "planning"
	CategoryDebugging       Category = "debugging"
	CategoryTesting         Category = "testing"
	CategoryInfrastructure  Category = "infrastructure"
	CategoryOther           Category = "other"
)

const DefaultCategory = CategoryGeneral

// Categories lists every valid label, in the order shown to the
// classification capability.
var Categories = []Category{
	CategoryGeneral,
	CategoryCoding,
	CategoryDevops,
	CategoryDataEngineering,
	CategorySecurity,
	CategoryArchitecture,
	CategoryProduct,
	CategoryResearch,
	CategoryWriting,
	CategoryPlanning,
	CategoryDebugging,
	CategoryTesting,
	CategoryInfrastructure,
	CategoryOther,
}

func ValidCategory(s string) bool {
	for _, c := range Categories {
		if Category(s) == c {
			return true
		}
	}
	return false
}
