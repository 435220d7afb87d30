package rules

// DocLink is a pointer into the official UnrealScript documentation.
type DocLink struct {
	Name string
	URL  string
}

// DocLinks is the curated set of reference pages surfaced by the CLI.
// They are listed, never fetched.
var DocLinks = []DocLink{
	{Name: "UnrealScript Home", URL: "https://docs.unrealengine.com/udk/Three/UnrealScriptHome.html"},
	{Name: "Language Reference", URL: "https://docs.unrealengine.com/udk/Three/UnrealScriptReference.html"},
	{Name: "defaultproperties", URL: "https://docs.unrealengine.com/udk/Three/UnrealScriptDefaultProperties.html"},
	{Name: "Replication", URL: "https://docs.unrealengine.com/udk/Three/ReplicationHome.html"},
	{Name: "States", URL: "https://docs.unrealengine.com/udk/Three/UnrealScriptStates.html"},
	{Name: "Structs", URL: "https://docs.unrealengine.com/udk/Three/UnrealScriptStructs.html"},
	{Name: "Enums", URL: "https://docs.unrealengine.com/udk/Three/UnrealScriptEnums.html"},
}
