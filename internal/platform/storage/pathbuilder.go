package storage

import (
	"fmt"
	"strings"
)

const translationFileExt = ".json"

// TranslationObjectPath composes the object name holding keyword translations
// for a language, e.g. "translations/de.json".
func TranslationObjectPath(prefix, languageCode string) (string, error) {
	code, err := validateSegment("languageCode", languageCode)
	if err != nil {
		return "", err
	}
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return code + translationFileExt, nil
	}
	for _, segment := range strings.Split(prefix, "/") {
		if _, err := validateSegment("prefix", segment); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%s/%s%s", prefix, code, translationFileExt), nil
}

func validateSegment(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("storage: %s is required", name)
	}
	if strings.ContainsAny(value, "/\\") {
		return "", fmt.Errorf("storage: %s contains invalid path characters", name)
	}
	if strings.Contains(value, "..") {
		return "", fmt.Errorf("storage: %s contains invalid traversal sequence", name)
	}
	return value, nil
}
