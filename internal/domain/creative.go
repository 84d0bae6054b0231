package domain

type CreativeID string
type CreativeType string
type CreativeStatus string

const (
	CreativeTypeImage CreativeType = "image"
	CreativeTypeVideo CreativeType = "video"
	CreativeTypeText  CreativeType = "text"

	CreativeStatusApproved CreativeStatus = "approved"
	CreativeStatusPending  CreativeStatus = "pending"
	CreativeStatusRejected CreativeStatus = "rejected"
)

// Creative is a piece of ad content, assignable to any number of ad
// groups. AdGroupIDs has set semantics: ordered, no duplicates.
type Creative struct {
	ID          CreativeID
	Name        string
	Type        CreativeType
	Status      CreativeStatus
	AdGroupIDs  []AdGroupID
	Dimensions  string
	FileSize    string
	CreatedDate string
}

// AssignAdGroup adds an ad group to the creative's association set.
// Assigning an already-associated ad group is a no-op.
func (c *Creative) AssignAdGroup(id AdGroupID) {
	for _, existing := range c.AdGroupIDs {
		if existing == id {
			return
		}
	}
	c.AdGroupIDs = append(c.AdGroupIDs, id)
}
