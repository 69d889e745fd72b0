package gameplayutils

import (
	"bytes"
	"fmt"
	"os"

	"github.com/qmuntal/gltf"
)

// A SceneEntity is a named, positioned object loaded from a scene file. It
// implements Entity (and Named), so loaded scenes feed directly into
// FindClosestEntity and EntityFilter searches.
type SceneEntity struct {
	name       string
	position   Vector
	rotation   Quaternion
	Properties *Properties // Custom properties exported on the node
}

// Name returns the name of the SceneEntity, as authored in the scene file.
func (entity *SceneEntity) Name() string { return entity.name }

// WorldPosition returns the world position of the SceneEntity.
func (entity *SceneEntity) WorldPosition() Vector { return entity.position }

// WorldRotation returns the world orientation of the SceneEntity as a Rotator.
func (entity *SceneEntity) WorldRotation() Rotator { return entity.rotation.Rotator() }

// A Scene is a flat collection of the entities found in a scene file, in document
// order (parents before their children).
type Scene struct {
	Entities []*SceneEntity
}

// EntityList returns the Scene's entities as a slice of Entity values, ready for
// FindClosestEntity.
func (scene *Scene) EntityList() []Entity {
	out := make([]Entity, 0, len(scene.Entities))
	for _, entity := range scene.Entities {
		out = append(out, entity)
	}
	return out
}

// Entity returns the first entity in the Scene with the name given, or nil if there
// isn't one.
func (scene *Scene) Entity(name string) *SceneEntity {
	for _, entity := range scene.Entities {
		if entity.name == name {
			return entity
		}
	}
	return nil
}

// Filter starts an EntityFilter chain over the Scene's entities.
func (scene *Scene) Filter() *EntityFilter {
	return FilterEntities(scene.EntityList())
}

// LoadSceneFromGLTFFile loads a .gltf or .glb file from the filepath given, turning
// each node in the document into a SceneEntity. It returns the Scene and an error if
// the process fails.
func LoadSceneFromGLTFFile(path string) (*Scene, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return LoadSceneFromGLTFData(fileData)

}

// LoadSceneFromGLTFData loads a .gltf or .glb file from the byte data given, turning
// each node in the document into a SceneEntity. Node transforms are composed down
// the hierarchy (translation and rotation; scale does not influence entity
// positions). Custom properties exported in a node's extras land in the entity's
// Properties map.
func LoadSceneFromGLTFData(data []byte) (*Scene, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("loading gltf data: %w", err)
	}

	scene := &Scene{}

	// Child nodes get visited through their parents so transforms compose; anything
	// that is nobody's child is a root.
	isChild := map[int]bool{}
	for _, node := range doc.Nodes {
		for _, childIndex := range node.Children {
			isChild[int(childIndex)] = true
		}
	}

	var addNode func(nodeIndex int, parentPosition Vector, parentRotation Quaternion)

	addNode = func(nodeIndex int, parentPosition Vector, parentRotation Quaternion) {

		node := doc.Nodes[nodeIndex]

		localPosition := NewVector(float64(node.Translation[0]), float64(node.Translation[1]), float64(node.Translation[2]))
		localRotation := NewQuaternion(float64(node.Rotation[0]), float64(node.Rotation[1]), float64(node.Rotation[2]), float64(node.Rotation[3]))

		if localRotation.Magnitude() < 1e-12 {
			localRotation = NewQuaternionIdentity()
		}

		worldPosition := parentPosition.Add(parentRotation.RotateVector(localPosition))
		worldRotation := parentRotation.Mul(localRotation).Normalized()

		entity := &SceneEntity{
			name:       node.Name,
			position:   worldPosition,
			rotation:   worldRotation,
			Properties: NewProperties(),
		}

		if extras, ok := node.Extras.(map[string]interface{}); ok {
			for propName, value := range extras {
				entity.Properties.Set(propName, value)
			}
		}

		scene.Entities = append(scene.Entities, entity)

		for _, childIndex := range node.Children {
			addNode(int(childIndex), worldPosition, worldRotation)
		}

	}

	for i := range doc.Nodes {
		if !isChild[i] {
			addNode(i, NewVectorZero(), NewQuaternionIdentity())
		}
	}

	return scene, nil

}
