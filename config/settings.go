package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type Settings struct {
	Terrain TerrainSettings `json:"terrain"`
	Window  WindowSettings  `json:"window"`
	Server  ServerSettings  `json:"server"`
}

type TerrainSettings struct {
	ChunkSize   int     `json:"chunkSize"`
	Seed        int64   `json:"seed"`
	VoxelSize   float64 `json:"voxelSize"`
	Frequency   float64 `json:"frequency"`
	HeightScale float64 `json:"heightScale"`
	HeightOff   float64 `json:"heightOffset"`
	WaterLevel  float64 `json:"waterLevel"`
	SandLevel   float64 `json:"sandLevel"`
}

type WindowSettings struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type ServerSettings struct {
	Port             int `json:"port"`
	UpdateIntervalMs int `json:"updateIntervalMs"`
}

// Defaults returns the stock settings used when no settings file exists.
func Defaults() Settings {
	return Settings{
		Terrain: TerrainSettings{
			ChunkSize:   32,
			Seed:        1,
			VoxelSize:   1.0,
			Frequency:   0.02,
			HeightScale: 12.0,
			HeightOff:   16.0,
			WaterLevel:  14.0,
			SandLevel:   15.5,
		},
		Window: WindowSettings{
			Width:  1280,
			Height: 720,
		},
		Server: ServerSettings{
			Port:             8080,
			UpdateIntervalMs: 100,
		},
	}
}

// Load reads settings from the given JSON file, falling back to defaults
// when the file does not exist.
func Load(path string) (Settings, error) {
	settings := Defaults()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No %s found, using defaults\n", path)
			return settings, nil
		}
		return settings, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&settings); err != nil {
		return settings, fmt.Errorf("error parsing %s: %v", path, err)
	}

	if settings.Terrain.ChunkSize < 1 || settings.Terrain.ChunkSize > 256 {
		return settings, fmt.Errorf("chunkSize %d out of range [1, 256]", settings.Terrain.ChunkSize)
	}

	fmt.Printf("Loaded settings: chunk size %d, seed %d\n",
		settings.Terrain.ChunkSize, settings.Terrain.Seed)

	return settings, nil
}
