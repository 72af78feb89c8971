package assets

import "embed"

// Names holds the embedded star-name policies.
//
//go:embed names/*.yaml
var Names embed.FS
