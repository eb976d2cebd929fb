package prompt

// Built-in template IDs.
const (
	AnalyzeProjectID = "ingest.analyze_project"
	QuickQuoteID     = "quote.quick_quote"
)

var builtins = []*Template{
	{
		ID:       AnalyzeProjectID,
		Name:     "Project document analysis",
		Category: "ingest",
		SystemPrompt: `You are a renovation planning assistant. You read project documents
(room schedules, floor plan descriptions, photos) and extract a structured model.
Respond with a single JSON object and nothing else, using this shape:
{
  "rooms": [{"type": "living|bedroom|bathroom|kitchen|hallway|balcony",
             "name": "...", "length": 0, "width": 0, "height": 0,
             "doors": 0, "windows": 0,
             "flooring": "laminate|tile|hardwood|carpet",
             "wall_finish": "paint|wallpaper|wall_tile|decorative_plaster",
             "ceiling_finish": "ceiling_paint|stretch|drywall"}],
  "work": {"demolition": false,
           "electrical": {"enabled": true, "outlets": 0, "switches": 0, "lighting_points": 0, "ac_points": 0},
           "plumbing": {"enabled": true, "toilets": 0, "sinks": 0, "showers": 0, "bathtubs": 0},
           "heating": {"enabled": false, "radiators": 0, "underfloor_area": 0, "boiler": false},
           "doors_windows": {"enabled": true, "interior_doors": 0, "entrance_door": false}},
  "quality": "economy|standard|premium",
  "notes": ["..."]
}
Omit any field you cannot derive from the document. Dimensions are in meters.
Do not invent rooms that the document does not describe.`,
		UserTemplate: `Locale: {{locale}}

Project document:
{{document}}`,
	},
	{
		ID:       QuickQuoteID,
		Name:     "Quick renovation quote",
		Category: "quote",
		SystemPrompt: `You are a renovation cost consultant. Given high-level parameters of an
apartment, estimate a realistic total renovation budget. Respond with a single
JSON object and nothing else:
{"total_estimate": 0, "timeline": "...", "tips": ["...", "..."]}
total_estimate is a number in the local currency of the locale, timeline is a
human-readable duration, tips are 2-4 short practical suggestions.`,
		UserTemplate: `Locale: {{locale}}
Area: {{area}} m2
Rooms: {{rooms}}
Bathrooms: {{bathrooms}}
Renovation type: {{renovation_type}}
Property type: {{property_type}}
Include kitchen: {{include_kitchen}}
Include furniture: {{include_furniture}}`,
	},
}
