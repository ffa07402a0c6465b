package permission

// GrantEntry is one module's capabilities inside a batch upsert.
type GrantEntry struct {
	ModuleID  uint `json:"module_id" binding:"required"`
	CanView   bool `json:"can_view"`
	CanCreate bool `json:"can_create"`
	CanUpdate bool `json:"can_update"`
	CanDelete bool `json:"can_delete"`
}

// UpsertGrantsRequest carries a partial grant set: modules not listed
// keep whatever they had.
type UpsertGrantsRequest struct {
	Grants []GrantEntry `json:"grants" binding:"required,min=1,dive"`
}
