package words

import (
	_ "embed"
)

//go:embed defaults/basic.txt
var defaultBasicList []byte

//go:embed defaults/phrases.txt
var defaultPhrasesList []byte
