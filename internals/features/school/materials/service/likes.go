// file: internals/features/school/materials/service/likes.go
package service

// ToggleLike adds userID to likes when absent and removes it when present.
// Second return is true when the result is a like, false for an unlike.
func ToggleLike(likes []string, userID string) ([]string, bool) {
	for i, v := range likes {
		if v == userID {
			return append(likes[:i:i], likes[i+1:]...), false
		}
	}
	return append(likes, userID), true
}
