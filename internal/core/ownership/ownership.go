// Package ownership holds the single authorization rule of the
// application: a resource may only be mutated by its author.
// Both the post and comment services apply it identically.
package ownership

// CanMutate reports whether the acting user may edit or delete a
// resource owned by authorID. Anonymous actors (zero ID) never pass.
func CanMutate(actorID, authorID int64) bool {
	return actorID != 0 && actorID == authorID
}
