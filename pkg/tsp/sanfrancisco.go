package tsp

// The fixed demo instance: ten San Francisco locations with travel costs in
// minutes. The residence hall is the designated start and end of the tour.

var sanFranciscoLocations = []Location{
	{Code: "RH", Name: "Residence Hall (2550 Van Ness)", Lat: 37.7992733, Lng: -122.4236169},
	{Code: "GGP", Name: "Golden Gate Park", Lat: 37.769089891975725, Lng: -122.48288044398697},
	{Code: "FW", Name: "Fisherman's Wharf", Lat: 37.808554042534496, Lng: -122.41569725932902},
	{Code: "YBG", Name: "Yerba Buena Gardens", Lat: 37.785115559363426, Lng: -122.40223338631426},
	{Code: "EXP", Name: "Exploratorium", Lat: 37.80181746236321, Lng: -122.39734800350925},
	{Code: "MDP", Name: "Mission Dolores Park", Lat: 37.76042200389471, Lng: -122.42688173419899},
	{Code: "BH", Name: "Bernal Heights", Lat: 37.74348530538466, Lng: -122.41361934584009},
	{Code: "SP", Name: "Salesforce Park", Lat: 37.78994295860268, Lng: -122.39614414583785},
	{Code: "US", Name: "Union Square", Lat: 37.78760386789979, Lng: -122.40674289238692},
	{Code: "P39", Name: "Pier 39", Lat: 37.80884250074092, Lng: -122.40990683419665},
}

var sanFranciscoCosts = [][]float64{
	{SentinelCost, 37, 17, 24, 27, 28, 46, 27, 18, 16},
	{37, SentinelCost, 35, 25, 45, 16, 46, 28, 26, 37},
	{17, 35, SentinelCost, 26, 12, 42, 62, 24, 18, 8},
	{24, 25, 26, SentinelCost, 22, 21, 36, 7, 5, 22},
	{27, 45, 12, 22, SentinelCost, 32, 52, 16, 19, 8},
	{28, 16, 42, 21, 32, SentinelCost, 29, 20, 17, 44},
	{46, 46, 62, 36, 52, 29, SentinelCost, 40, 43, 60},
	{27, 28, 24, 7, 16, 20, 40, SentinelCost, 6, 19},
	{18, 26, 18, 5, 19, 17, 43, 6, SentinelCost, 12},
	{16, 37, 8, 22, 8, 44, 60, 19, 12, SentinelCost},
}

// SanFrancisco returns a fresh copy of the fixed 10-node demo instance.
func SanFrancisco() Instance {
	return Instance{
		Locations: sanFranciscoLocations,
		Costs:     sanFranciscoCosts,
		Start:     0,
	}.Clone()
}
