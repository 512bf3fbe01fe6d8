package constants

// UncategorizedCategory is assigned when no signal names a category.
const UncategorizedCategory = "Uncategorized"

// SaaSCategories is the taxonomy used by the pattern registry and the vendor
// classifier. Order matters only for display.
var SaaSCategories = []string{
	"Productivity",
	"Design",
	"Communication",
	"CRM",
	"ERP",
	"DevOps",
	"Infrastructure",
	"Cloud",
	"Security",
	"Analytics",
	"Data",
	"HR",
	"Finance",
	"Marketing",
	"Enterprise",
	"Entertainment",
	UncategorizedCategory,
}
