// Package gitpath contains consts for the well-known paths inside a
// git directory.
package gitpath

// .git/ files and directories, relative to the git directory root.
const (
	DotGitPath    = ".git"
	IndexPath     = "index"
	HEADPath      = "HEAD"
	ObjectsPath   = "objects"
	RefsPath      = "refs"
	RefsTagsPath  = RefsPath + "/tags"
	RefsHeadsPath = RefsPath + "/heads"
)
