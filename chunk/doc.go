/*
Package chunk implements the composable tree of save-state producers.

Each SaveChunk[T] wraps a pair of application callbacks: one that produces a
value of T on save, and one that consumes a freshly loaded T. Chunks attach to
each other by data type, letting independent subsystems contribute their own
slice of state to one persisted artifact without knowing about each other:

	type AudioData struct{ Volume float64 }
	type GameData struct {
	    Level int
	    Audio AudioData
	}

	audio := chunk.New(
	    func(c *chunk.SaveChunk[AudioData]) (AudioData, error) {
	        return AudioData{Volume: mixer.Volume()}, nil
	    },
	    func(c *chunk.SaveChunk[AudioData], d AudioData) error {
	        mixer.SetVolume(d.Volume)
	        return nil
	    })

	root := chunk.New(
	    func(c *chunk.SaveChunk[GameData]) (GameData, error) {
	        audioData, err := chunk.GetChunkSaveData[AudioData](c)
	        if err != nil {
	            return GameData{}, err
	        }
	        return GameData{Level: current.Level, Audio: audioData}, nil
	    },
	    func(c *chunk.SaveChunk[GameData], d GameData) error {
	        current.Level = d.Level
	        return chunk.LoadChunkSaveData(c, d.Audio)
	    })

	err := chunk.AddChunk(root, audio)

Parents do not recurse into children automatically; propagation is an explicit
choice the parent's callbacks make, as the example shows. At most one child per
data type may be registered through AddChunk; OverwriteChunk replaces instead
of failing and is the escape hatch for re-wiring a tree.
*/
package chunk
