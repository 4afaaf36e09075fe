// file: internals/features/school/classes/service/membership.go
package service

import (
	"fmt"

	userModel "campushub_backend/internals/features/users/user/model"
)

// MembershipList names the three role-filtered lists on a class.
type MembershipList string

const (
	ListCRs      MembershipList = "crs"
	ListCAs      MembershipList = "cas"
	ListStudents MembershipList = "students"
)

// ListForRole maps a user role to the membership list it belongs in.
// Faculty and admins are not class members.
func ListForRole(role string) (MembershipList, error) {
	switch role {
	case userModel.RoleCR:
		return ListCRs, nil
	case userModel.RoleCA:
		return ListCAs, nil
	case userModel.RoleStudent:
		return ListStudents, nil
	default:
		return "", fmt.Errorf("role %q has no class membership list", role)
	}
}

// AppendUnique adds id to list unless already present. Second return is
// whether the list changed.
func AppendUnique(list []string, id string) ([]string, bool) {
	for _, v := range list {
		if v == id {
			return list, false
		}
	}
	return append(list, id), true
}

// Remove drops id from list. Second return is whether the list changed.
func Remove(list []string, id string) ([]string, bool) {
	out := list[:0:0]
	changed := false
	for _, v := range list {
		if v == id {
			changed = true
			continue
		}
		out = append(out, v)
	}
	return out, changed
}
