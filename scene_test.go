package gameplayutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSceneGLTF = []byte(`{
	"asset": {"version": "2.0"},
	"scene": 0,
	"scenes": [{"nodes": [0, 1]}],
	"nodes": [
		{"name": "Spawn", "translation": [1, 2, 3], "extras": {"team": "red"}},
		{"name": "Platform", "translation": [10, 0, 0], "rotation": [0, 0, 0.7071067811865476, 0.7071067811865476], "children": [2]},
		{"name": "Ledge", "translation": [5, 0, 1]}
	]
}`)

func TestLoadSceneFromGLTFData(t *testing.T) {

	scene, err := LoadSceneFromGLTFData(testSceneGLTF)
	require.NoError(t, err)
	require.Len(t, scene.Entities, 3)

	spawn := scene.Entity("Spawn")
	require.NotNil(t, spawn)
	assert.True(t, spawn.WorldPosition().Equals(NewVector(1, 2, 3)))
	assert.True(t, spawn.Properties.Has("team"))
	assert.Equal(t, "red", spawn.Properties.AsString("team", ""))
	assert.Equal(t, "fallback", spawn.Properties.AsString("missing", "fallback"))

	// Ledge sits at (5, 0, 1) local to a parent at (10, 0, 0) that is yawed 90
	// degrees, so its world position is (10, 5, 1).
	ledge := scene.Entity("Ledge")
	require.NotNil(t, ledge)
	assert.InDelta(t, 10, ledge.WorldPosition().X, 1e-6)
	assert.InDelta(t, 5, ledge.WorldPosition().Y, 1e-6)
	assert.InDelta(t, 1, ledge.WorldPosition().Z, 1e-6)
	assert.InDelta(t, 90, ledge.WorldRotation().Yaw, 1e-6)

	assert.Nil(t, scene.Entity("Missing"))

}

func TestSceneSearches(t *testing.T) {

	scene, err := LoadSceneFromGLTFData(testSceneGLTF)
	require.NoError(t, err)

	closest, _, ok := FindClosestEntity(NewVectorZero(), scene.EntityList())
	require.True(t, ok)
	assert.Equal(t, "Spawn", closest.(*SceneEntity).Name())

	platform := scene.Filter().ByName("Platform").Nearest(NewVectorZero())
	require.NotNil(t, platform)
	assert.Equal(t, "Platform", platform.(*SceneEntity).Name())

}

func TestLoadSceneFromGLTFDataRejectsGarbage(t *testing.T) {
	_, err := LoadSceneFromGLTFData([]byte("not a gltf document"))
	assert.Error(t, err)
}

func TestLoadSceneFromGLTFFileMissing(t *testing.T) {
	_, err := LoadSceneFromGLTFFile("testdata/does-not-exist.gltf")
	assert.Error(t, err)
}
