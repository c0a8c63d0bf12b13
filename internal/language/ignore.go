package language

import "strings"

// ignoredExtensions lists formats that never hold source text
var ignoredExtensions = map[string]struct{}{
	// images
	"png": {}, "jpg": {}, "jpeg": {}, "gif": {}, "bmp": {}, "ico": {}, "tif": {}, "tiff": {},
	"webp": {}, "psd": {}, "heic": {},
	// archives
	"zip": {}, "tar": {}, "gz": {}, "tgz": {}, "bz2": {}, "xz": {}, "7z": {}, "rar": {}, "zst": {},
	"jar": {}, "war": {},
	// audio and video
	"mp3": {}, "wav": {}, "flac": {}, "ogg": {}, "aac": {}, "m4a": {},
	"mp4": {}, "mkv": {}, "avi": {}, "mov": {}, "webm": {},
	// office documents
	"pdf": {}, "doc": {}, "docx": {}, "xls": {}, "xlsx": {}, "ppt": {}, "pptx": {},
	"odt": {}, "ods": {}, "odp": {},
	// compiled artifacts and fonts
	"exe": {}, "dll": {}, "so": {}, "dylib": {}, "o": {}, "a": {}, "class": {}, "pyc": {},
	"wasm": {}, "bin": {}, "ttf": {}, "otf": {}, "woff": {}, "woff2": {},
}

// IsIgnored reports whether path has an extension on the fixed ignore-list
// or in extra. Entries of extra may be written with or without the dot.
func IsIgnored(path string, extra []string) bool {
	ext := extension(path)
	if ext == "" {
		return false
	}
	if _, ok := ignoredExtensions[ext]; ok {
		return true
	}
	for _, e := range extra {
		if strings.ToLower(strings.TrimPrefix(e, ".")) == ext {
			return true
		}
	}
	return false
}
