package domain

// CreatorInput is the creator selection of the audit record form. It is one of
// ExistingCreator, NewCreator or UnsetCreator; a nil CreatorInput is Unset.
type CreatorInput interface {
	isCreatorInput()
}

// ExistingCreator selects a user that is already known.
type ExistingCreator struct {
	UserID string
}

// NewCreator asks for a user to be created from a free-text name.
type NewCreator struct {
	Name string
}

// UnsetCreator leaves the record without a creator.
type UnsetCreator struct{}

func (ExistingCreator) isCreatorInput() {}
func (NewCreator) isCreatorInput()      {}
func (UnsetCreator) isCreatorInput()    {}
