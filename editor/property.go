package editor

import (
	"fmt"
	"sort"

	"scene-editor/math"
	"scene-editor/scene"
)

// property is one history-aware node field: a (getter, setter) pair plus
// whether assigning it invalidates cached world matrices. The set of
// supported names is fixed, so a typo fails at action construction
// instead of silently writing nowhere.
type property struct {
	get       func(*scene.Node) interface{}
	set       func(*scene.Node, interface{})
	geometric bool
}

var properties = map[string]property{
	"name": {
		get: func(n *scene.Node) interface{} { return n.Name },
		set: func(n *scene.Node, v interface{}) { n.Name = v.(string) },
	},
	"visible": {
		get: func(n *scene.Node) interface{} { return n.Visible },
		set: func(n *scene.Node, v interface{}) { n.Visible = v.(bool) },
	},
	"position": {
		get:       func(n *scene.Node) interface{} { return n.Transform.Position },
		set:       func(n *scene.Node, v interface{}) { n.Transform.Position = v.(math.Vec3) },
		geometric: true,
	},
	"rotation": {
		get:       func(n *scene.Node) interface{} { return n.Transform.Rotation },
		set:       func(n *scene.Node, v interface{}) { n.Transform.Rotation = v.(math.Quaternion) },
		geometric: true,
	},
	"scale": {
		get:       func(n *scene.Node) interface{} { return n.Transform.Scale },
		set:       func(n *scene.Node, v interface{}) { n.Transform.Scale = v.(math.Vec3) },
		geometric: true,
	},
}

func lookupProperty(name string) (property, error) {
	p, ok := properties[name]
	if !ok {
		return property{}, fmt.Errorf("unknown property %q", name)
	}
	return p, nil
}

// PropertyNames returns the sorted set of history-aware property names.
func PropertyNames() []string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
