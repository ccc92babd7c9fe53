package batch

import (
	"encoding/binary"
	"encoding/json"
	"os"

	"github.com/cespare/xxhash/v2"

	"vectormath/interop"
	"vectormath/internal/raster"
	"vectormath/vmath"
)

// ManifestEntry describes one rendered frame and the camera that produced
// it, so overlays can be projected onto the image later.
type ManifestEntry struct {
	Frame          int              `json:"frame"`
	Time           float64          `json:"time"`
	Image          string           `json:"image"`
	CameraPosition vmath.Vector3    `json:"camera_position"`
	Orbit          vmath.Quaternion `json:"orbit"`
	View           vmath.Matrix4    `json:"view"`
	Projection     vmath.Matrix4    `json:"projection"`
	ViewProjection interop.F32Mat4  `json:"view_projection"`
	Viewport       vmath.Matrix3    `json:"viewport"`

	// PoseHash is equal for frames whose node transforms are equal.
	PoseHash uint64 `json:"pose_hash"`
}

func newManifestEntry(frame int, t float64, image string, cam raster.Camera, worlds []vmath.Matrix4, size int) ManifestEntry {
	proj := raster.NewProjector(cam, size)
	return ManifestEntry{
		Frame:          frame,
		Time:           t,
		Image:          image,
		CameraPosition: cam.Position(),
		Orbit:          cam.Orbit,
		View:           proj.View,
		Projection:     proj.Projection,
		ViewProjection: vmath.MatMul4R(proj.Projection, interop.F32Mat4{}.MakeMat4(proj.View.Mat4())),
		Viewport:       proj.Viewport,
		PoseHash:       PoseHash(worlds),
	}
}

// PoseHash folds the hashes of the world matrices in order.
func PoseHash(worlds []vmath.Matrix4) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, w := range worlds {
		binary.LittleEndian.PutUint64(buf[:], w.Hash())
		d.Write(buf[:])
	}
	return d.Sum64()
}

// WriteManifest writes the entries as indented JSON.
func WriteManifest(path string, entries []ManifestEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) ([]ManifestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
