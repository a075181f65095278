// Package preference contains theme and install prompt use cases.
package preference

import (
	"strings"

	"github.com/google/uuid"

	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// maxDeviceIDLength bounds client-generated device identifiers.
const maxDeviceIDLength = 128

// ResolveOwner returns the preference owner key for a request. A signed-in
// user wins over the device id.
func ResolveOwner(userID *uuid.UUID, deviceID string) (string, error) {
	if userID != nil && *userID != uuid.Nil {
		return "user:" + userID.String(), nil
	}
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" || len(deviceID) > maxDeviceIDLength {
		return "", domainerror.NewPreferenceError(
			domainerror.ErrCodeMissingPrefOwner,
			"sign in or send an X-Device-ID header",
			domainerror.ErrMissingPreferenceOwner,
		)
	}
	return "device:" + deviceID, nil
}

func requireOwner(owner string) error {
	if owner == "" {
		return domainerror.NewPreferenceError(
			domainerror.ErrCodeMissingPrefOwner,
			"preference owner is required",
			domainerror.ErrMissingPreferenceOwner,
		)
	}
	return nil
}
