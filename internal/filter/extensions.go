package filter

import "strings"

// DefaultDenyExtensions mirrors Scrapy's IGNORED_EXTENSIONS: file
// extensions that are almost never worth crawling as pages (media,
// archives, office documents, and executables). It is the baseline
// deny_extensions list when the caller hasn't overridden it.
var DefaultDenyExtensions = []string{
	// images
	"mng", "pct", "bmp", "gif", "jpg", "jpeg", "png", "pst", "psp", "tif",
	"tiff", "ai", "drw", "dxf", "eps", "ps", "svg", "cdr", "ico",
	// audio
	"mp3", "wma", "ogg", "wav", "ra", "aac", "mid", "au", "aiff",
	// video
	"3gp", "asf", "asx", "avi", "mov", "mp4", "mpg", "qt", "rm", "swf",
	"wmv", "m4a", "m4v", "flv", "webm",
	// office suites
	"xlsx", "xls", "xltx", "xlsm", "doc", "docx", "dot", "dotx", "odt",
	"ods", "odg", "odp", "ppt", "pptx", "pps", "ppsx", "pot", "potx",
	// other
	"css", "pdf", "exe", "bin", "rss", "zip", "rar", "gz", "bz2", "7z",
	"tar", "tgz", "iso", "dmg", "apk", "deb", "rpm", "msi", "js", "json",
}

// hasExtension reports whether path's last segment ends in one of exts
// (case-insensitive, without the dot).
func hasExtension(path string, exts []string) bool {
	ext := extensionOf(path)
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// extensionOf returns the file extension (without the dot) of path's
// last segment, or "" if it has none.
func extensionOf(path string) string {
	name := path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		name = path[i+1:]
	}
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 || dot == len(name)-1 {
		return ""
	}
	return name[dot+1:]
}
