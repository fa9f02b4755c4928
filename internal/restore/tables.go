package restore

// allowlist maps raw spellings that the bare-digraph rule would otherwise
// restore to the real Vietnamese word they render. Only the keys matter to
// the classifier; the rendered side documents why each entry exists and is
// checked by the tests.
var allowlist = map[string]string{
	"air": "ải",
	"ais": "ái",
	"aix": "ãi",
	"aij": "ại",
	"aos": "áo",
	"aof": "ào",
	"aor": "ảo",
	"ois": "ói",
	"oir": "ỏi",
	"uar": "ủa",
	"uas": "úa",
	"uir": "ủi",
	"uis": "úi",
}

// Allowlist returns a copy of the built-in exception table.
func Allowlist() map[string]string {
	out := make(map[string]string, len(allowlist))
	for k, v := range allowlist {
		out[k] = v
	}
	return out
}
