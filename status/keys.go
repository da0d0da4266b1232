package status

// Metric keys shared by the scheduler, renderer and hosts
const (
	KeyTicks        = "engine.ticks"
	KeyFrames       = "engine.frames"
	KeySprites      = "render.sprites"
	KeySkipped      = "render.skipped"
	KeyFPS          = "render.fps"
	KeyBackend      = "render.backend"
	KeyAssetsReady  = "asset.ready"
	KeyAudioEnabled = "audio.enabled"
)
