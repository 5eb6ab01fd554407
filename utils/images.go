package utils

import "strings"

const imageSeparator = "|"

// SplitImages turns the stored pipe-joined URL list into a slice.
func SplitImages(raw string) []string {
	images := []string{}
	for _, url := range strings.Split(raw, imageSeparator) {
		if url = strings.TrimSpace(url); url != "" {
			images = append(images, url)
		}
	}
	return images
}

func JoinImages(images []string) string {
	cleaned := make([]string, 0, len(images))
	for _, url := range images {
		if url = strings.TrimSpace(url); url != "" {
			cleaned = append(cleaned, url)
		}
	}
	return strings.Join(cleaned, imageSeparator)
}
