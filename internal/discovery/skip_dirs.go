package discovery

// gitDirName is the standard name for git directories, always skipped.
const gitDirName = ".git"

// skipDirsSet is a pre-computed set for O(1) directory skip lookups.
// Includes common large directories that should not be traversed while
// collecting extractable source files.
var skipDirsSet = map[string]struct{}{
	gitDirName:       {},
	"node_modules":   {},
	"vendor":         {},
	"packages":       {},
	"target":         {},
	"dist":           {},
	"build":          {},
	".cache":         {},
	".local":         {},
	".npm":           {},
	".pnpm":          {},
	".yarn":          {},
	".cargo":         {},
	".rustup":        {},
	"__pycache__":    {},
	".venv":          {},
	"venv":           {},
	".tox":           {},
	".nox":           {},
	".eggs":          {},
	"*.egg-info":     {},
	".pytest_cache":  {},
	".mypy_cache":    {},
	".ruff_cache":    {},
	"coverage":       {},
	".coverage":      {},
	".gradle":        {},
	".m2":            {},
	".ivy2":          {},
	"bin":            {},
	"obj":            {},
	"out":            {},
	".next":          {},
	".nuxt":          {},
	".svelte-kit":    {},
	".vercel":        {},
	".netlify":       {},
	"_build":         {},
	"site-packages":  {},
	".terraform":     {},
	".pulumi":        {},
	".serverless":    {},
	"testdata":       {},
	"fixtures":       {},
	".direnv":        {},
	".devenv":        {},
	"result":         {}, // Nix build output symlink
	".nix-defexpr":   {},
	".nix-profile":   {},
	"zig-cache":      {},
	"zig-out":        {},
	".zig-cache":     {},
	"bazel-bin":      {},
	"bazel-out":      {},
	"bazel-testlogs": {},
}

// ShouldSkipDirectory reports whether a directory with this base name
// should be excluded from a source walk or watch.
func ShouldSkipDirectory(dirName string) bool {
	return shouldSkipDirectory(dirName)
}

// shouldSkipDirectory returns true if the directory should be skipped during the source walk.
func shouldSkipDirectory(dirName string) bool {
	// Fast path: check the pre-computed set
	if _, skip := skipDirsSet[dirName]; skip {
		return true
	}

	// Skip hidden directories (except .git which is handled separately)
	if len(dirName) > 1 && dirName[0] == '.' && dirName != gitDirName {
		return true
	}

	return false
}
