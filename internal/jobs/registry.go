package jobs

import "fmt"

// Notebook describes one persistence notebook behind the run API: the
// warehouse table it writes, its path suffix under the configured base path,
// and the parameter key its payload travels under.
type Notebook struct {
	TableName  string
	PathSuffix string
	OutputKey  string
}

// The registry is closed: unknown names are rejected up front instead of
// surfacing as a 404 from the run API.
var notebooks = map[string]Notebook{
	"buildup": {
		TableName:  "buildup",
		PathSuffix: "receive_buildup",
		OutputKey:  "outputBuildup",
	},
	"catlote": {
		TableName:  "catlote",
		PathSuffix: "receive_catlote",
		OutputKey:  "outputCatlote",
	},
	"price_simulation": {
		TableName:  "price_simulation",
		PathSuffix: "send_simulation_to_approval",
		OutputKey:  "changeID",
	},
	"approval_status": {
		TableName:  "approval_status",
		PathSuffix: "update_approval_status",
		OutputKey:  "outputApprovalStatus",
	},
}

// ErrUnknownNotebook is returned for names outside the registry.
type ErrUnknownNotebook struct {
	Name string
}

func (e *ErrUnknownNotebook) Error() string {
	return fmt.Sprintf("unknown notebook %q", e.Name)
}

// LookupNotebook resolves a notebook name against the registry.
func LookupNotebook(name string) (Notebook, error) {
	nb, ok := notebooks[name]
	if !ok {
		return Notebook{}, &ErrUnknownNotebook{Name: name}
	}
	return nb, nil
}
