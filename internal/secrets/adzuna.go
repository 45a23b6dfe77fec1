package secrets

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups the engine's secrets in the OS keychain.
const KeyringService = "careermatch"

const (
	adzunaIDAccount  = "adzuna:app_id"
	adzunaKeyAccount = "adzuna:app_key"
)

var ErrNoCredentials = errors.New("adzuna credentials not found (store them in the keychain or set them via env)")

// GetAdzunaCredentials reads the Adzuna app id and key from the keychain.
func GetAdzunaCredentials() (appID, appKey string, err error) {
	appID, idErr := keyring.Get(KeyringService, adzunaIDAccount)
	appKey, keyErr := keyring.Get(KeyringService, adzunaKeyAccount)
	if idErr != nil || keyErr != nil ||
		strings.TrimSpace(appID) == "" || strings.TrimSpace(appKey) == "" {
		return "", "", ErrNoCredentials
	}
	return appID, appKey, nil
}

// SetAdzunaCredentials stores the credential pair. Both halves are
// written or neither.
func SetAdzunaCredentials(appID, appKey string) error {
	if strings.TrimSpace(appID) == "" {
		return errors.New("adzuna app id is empty")
	}
	if strings.TrimSpace(appKey) == "" {
		return errors.New("adzuna app key is empty")
	}
	if err := keyring.Set(KeyringService, adzunaIDAccount, appID); err != nil {
		return err
	}
	if err := keyring.Set(KeyringService, adzunaKeyAccount, appKey); err != nil {
		_ = keyring.Delete(KeyringService, adzunaIDAccount)
		return err
	}
	return nil
}

func DeleteAdzunaCredentials() error {
	idErr := keyring.Delete(KeyringService, adzunaIDAccount)
	keyErr := keyring.Delete(KeyringService, adzunaKeyAccount)
	if idErr != nil && !errors.Is(idErr, keyring.ErrNotFound) {
		return idErr
	}
	if keyErr != nil && !errors.Is(keyErr, keyring.ErrNotFound) {
		return keyErr
	}
	return nil
}
