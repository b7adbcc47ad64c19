package models

// ResourceType classifies the artifact format of a catalog resource.
type ResourceType string

const (
	ResourceTypeVideo ResourceType = "video"
	ResourceTypeImage ResourceType = "image"
	ResourceTypePDF   ResourceType = "pdf"
	ResourceTypePPT   ResourceType = "ppt"
	ResourceTypeDOC   ResourceType = "doc"
	ResourceTypeDOCX  ResourceType = "docx"
	ResourceTypeXLS   ResourceType = "xls"
	ResourceTypeXLSX  ResourceType = "xlsx"
	ResourceTypeZIP   ResourceType = "zip"
	ResourceTypeRAR   ResourceType = "rar"
	ResourceTypeOther ResourceType = "other"
)

var resourceTypes = map[ResourceType]struct{}{
	ResourceTypeVideo: {}, ResourceTypeImage: {}, ResourceTypePDF: {},
	ResourceTypePPT: {}, ResourceTypeDOC: {}, ResourceTypeDOCX: {},
	ResourceTypeXLS: {}, ResourceTypeXLSX: {}, ResourceTypeZIP: {},
	ResourceTypeRAR: {}, ResourceTypeOther: {},
}

// ParseResourceType validates a raw form value against the closed set.
func ParseResourceType(value string) (ResourceType, bool) {
	t := ResourceType(value)
	_, ok := resourceTypes[t]
	return t, ok
}

// ResourceTypes returns the enumeration in its interop order.
func ResourceTypes() []ResourceType {
	return []ResourceType{
		ResourceTypeVideo, ResourceTypeImage, ResourceTypePDF,
		ResourceTypePPT, ResourceTypeDOC, ResourceTypeDOCX,
		ResourceTypeXLS, ResourceTypeXLSX, ResourceTypeZIP,
		ResourceTypeRAR, ResourceTypeOther,
	}
}

// ResourceCategory classifies what kind of study material a resource is.
type ResourceCategory string

const (
	CategoryNote          ResourceCategory = "note"
	CategoryQuestionPaper ResourceCategory = "question paper"
	CategoryPresentation  ResourceCategory = "presentation"
	CategoryOther         ResourceCategory = "other"
)

// ParseResourceCategory validates a raw form value against the closed set.
func ParseResourceCategory(value string) (ResourceCategory, bool) {
	switch c := ResourceCategory(value); c {
	case CategoryNote, CategoryQuestionPaper, CategoryPresentation, CategoryOther:
		return c, true
	}
	return "", false
}

// ResourceCategories returns the enumeration in its interop order.
func ResourceCategories() []ResourceCategory {
	return []ResourceCategory{
		CategoryNote, CategoryQuestionPaper, CategoryPresentation, CategoryOther,
	}
}

// Semester is the string-typed semester literal stored on a resource.
// Valid values are "1" through "8".
type Semester string

// ParseSemester validates a raw form value against the eight literals.
func ParseSemester(value string) (Semester, bool) {
	switch value {
	case "1", "2", "3", "4", "5", "6", "7", "8":
		return Semester(value), true
	}
	return "", false
}

// Semesters returns all valid semester literals.
func Semesters() []Semester {
	return []Semester{"1", "2", "3", "4", "5", "6", "7", "8"}
}
