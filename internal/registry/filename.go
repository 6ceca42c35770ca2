package registry

import "strings"

const (
	nodeFileExt   = ".json"
	nsDelimiter   = "__"
	nsSeparator   = ":"
	nodesDirName  = "nodes"
	generatedName = "generated"
)

// NodeFilename maps an item identifier to its filesystem-safe node file
// name: minecraft:bread -> minecraft__bread.json. The mapping is reversible
// via NodeID.
func NodeFilename(id string) string {
	return strings.Replace(id, nsSeparator, nsDelimiter, 1) + nodeFileExt
}

// NodeID reverses NodeFilename. The second return is false for names that
// were not produced by it.
func NodeID(filename string) (string, bool) {
	if !strings.HasSuffix(filename, nodeFileExt) {
		return "", false
	}
	stem := strings.TrimSuffix(filename, nodeFileExt)
	ns, path, found := strings.Cut(stem, nsDelimiter)
	if !found || ns == "" || path == "" {
		return "", false
	}
	return ns + nsSeparator + path, true
}

// Layout resolves the conventional directory structure under a registry
// root: nodes/ for per-item records, generated/ for machine-owned summary
// artifacts.
type Layout struct {
	Root string
}

func (l Layout) NodesDir() string { return join(l.Root, nodesDirName) }

func (l Layout) GeneratedDir() string { return join(l.Root, generatedName) }

func (l Layout) NodePath(id string) string { return join(l.NodesDir(), NodeFilename(id)) }
