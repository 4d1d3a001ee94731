package ginternals

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/arjunvc/gitcore/ginternals/config"
	"github.com/arjunvc/gitcore/ginternals/githash"
)

// Ref path components. Kept in unix format since that's how they're
// stored on disk; backends translate to the host separator as needed.
const (
	refsDirName      = "refs"
	refsTagsRelPath  = refsDirName + "/tags"
	refsHeadsRelPath = refsDirName + "/heads"
)

// LocalTagFullName returns the full ref path of a tag, e.g. "my-tag" ->
// "refs/tags/my-tag".
func LocalTagFullName(shortName string) string {
	return path.Join(refsTagsRelPath, shortName)
}

// LocalTagShortName strips the "refs/tags/" prefix off a tag's full name.
func LocalTagShortName(fullName string) string {
	return strings.TrimPrefix(fullName, refsTagsRelPath+"/")
}

// LocalBranchFullName returns the full ref path of a branch, e.g.
// "main" -> "refs/heads/main".
func LocalBranchFullName(shortName string) string {
	return path.Join(refsHeadsRelPath, shortName)
}

// LocalBranchShortName strips the "refs/heads/" prefix off a branch's
// full name.
func LocalBranchShortName(fullName string) string {
	return strings.TrimPrefix(fullName, refsHeadsRelPath+"/")
}

// RefsPath returns the path to the directory holding all refs.
func RefsPath(cfg config.Config) string {
	return filepath.Join(cfg.GitDirPath, refsDirName)
}

// TagsPath returns the path to the directory holding tag refs.
func TagsPath(cfg config.Config) string {
	return filepath.Join(RefsPath(cfg), "tags")
}

// LocalBranchesPath returns the path to the directory holding branch
// refs.
func LocalBranchesPath(cfg config.Config) string {
	return filepath.Join(RefsPath(cfg), "heads")
}

// HeadPath returns the path to the HEAD file.
func HeadPath(cfg config.Config) string {
	return filepath.Join(cfg.GitDirPath, "HEAD")
}

// IndexPath returns the path to the staging index file.
func IndexPath(cfg config.Config) string {
	return filepath.Join(cfg.GitDirPath, "index")
}

// ObjectsPath returns the path to the loose-object directory.
func ObjectsPath(cfg config.Config) string {
	return cfg.ObjectDirPath
}

// LooseObjectPath returns the on-disk path of a loose object:
// .git/objects/<first-2-hex-chars>/<remaining-38-hex-chars>.
func LooseObjectPath(cfg config.Config, oid githash.Oid) string {
	prefix, suffix := oid.Split()
	return filepath.Join(ObjectsPath(cfg), prefix, suffix)
}
