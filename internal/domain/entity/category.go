package entity

// Category is the user-chosen subject grouping of a listing. Its value doubles
// as the name of the denormalized category collection.
type Category string

const (
	CategoryBusinessEconomics     Category = "Business and Economics"
	CategoryCommunicationMedia    Category = "Communication and Media"
	CategoryComputingEngineering  Category = "Computing and Engineering"
	CategoryEducation             Category = "Education"
	CategoryHealthSciences        Category = "Health Sciences"
	CategoryHumanitiesSocial      Category = "Humanities and Social Sciences"
	CategoryLanguageLiterature    Category = "Language and Literature"
	CategoryMathematicsStatistics Category = "Mathematics and Statistics"
	CategoryNaturalPhysical       Category = "Natural and Physical Sciences"
	CategoryPerformingVisualArts  Category = "Performing and Visual Arts"
	CategoryReligionPhilosophy    Category = "Religion and Philosophy"
	CategoryOther                 Category = "Other"
)

var allCategories = []Category{
	CategoryBusinessEconomics,
	CategoryCommunicationMedia,
	CategoryComputingEngineering,
	CategoryEducation,
	CategoryHealthSciences,
	CategoryHumanitiesSocial,
	CategoryLanguageLiterature,
	CategoryMathematicsStatistics,
	CategoryNaturalPhysical,
	CategoryPerformingVisualArts,
	CategoryReligionPhilosophy,
	CategoryOther,
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)

	return out
}

// ParseCategory matches s against the known categories.
func ParseCategory(s string) (Category, bool) {
	for _, c := range allCategories {
		if string(c) == s {
			return c, true
		}
	}

	return "", false
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := ParseCategory(string(c))

	return ok
}

// Collection returns the name of the denormalized collection for c.
func (c Category) Collection() string {
	return string(c)
}
