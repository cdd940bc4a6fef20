package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// WeatherTool is a canned demo capability kept in the fixed catalog.
type WeatherTool struct{}

// WeatherArgs represents the arguments for the weather stub
type WeatherArgs struct {
	City string `json:"city"`
}

func NewWeatherTool() *WeatherTool {
	return &WeatherTool{}
}

func (t *WeatherTool) Name() string {
	return "get_weather"
}

func (t *WeatherTool) Description() string {
	return "Get the current weather for a city. Useful for small talk before a client meeting."
}

func (t *WeatherTool) Parameters() json.RawMessage {
	schema := `{
		"type": "object",
		"properties": {
			"city": {
				"type": "string",
				"description": "City to report the weather for"
			}
		},
		"required": ["city"]
	}`
	return json.RawMessage(schema)
}

func (t *WeatherTool) Execute(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	var weatherArgs WeatherArgs
	if err := json.Unmarshal(args, &weatherArgs); err != nil || weatherArgs.City == "" {
		return ToolResult{Content: "Weather information is unavailable without a city."}, nil
	}

	return ToolResult{
		Content: fmt.Sprintf("The weather in %s is currently 18°C and partly cloudy.", weatherArgs.City),
	}, nil
}
