package product

import "strings"

// SplitImages trims entries, drops blanks and splits the rest into a cover and
// an ordered gallery.
func SplitImages(images []string) (cover string, gallery []string) {
	gallery = []string{}
	for _, img := range images {
		img = strings.TrimSpace(img)
		if img == "" {
			continue
		}
		if cover == "" {
			cover = img
			continue
		}
		gallery = append(gallery, img)
	}
	return cover, gallery
}

func JoinImages(cover string, gallery []string) []string {
	out := make([]string, 0, len(gallery)+1)
	if cover != "" {
		out = append(out, cover)
	}
	return append(out, gallery...)
}

// ComposeImages picks the image list for a write: an explicit list wins,
// otherwise the legacy cover and gallery fields are joined.
func ComposeImages(images []string, cover *string, gallery []string) []string {
	if images != nil {
		return images
	}
	c := ""
	if cover != nil {
		c = strings.TrimSpace(*cover)
	}
	return JoinImages(c, gallery)
}
