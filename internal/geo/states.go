package geo

// StateInfo names a state and its wildlife agency.
type StateInfo struct {
	Name   string
	Agency string
}

// States maps two-letter state codes to their wildlife agency. Loaded once
// at init, never mutated.
var States = map[string]StateInfo{
	"AL": {"Alabama", "Alabama Wildlife & Freshwater Fisheries"},
	"AK": {"Alaska", "Alaska Department of Fish and Game"},
	"AZ": {"Arizona", "Arizona Game and Fish Department"},
	"AR": {"Arkansas", "Arkansas Game and Fish Commission"},
	"CA": {"California", "California Department of Fish and Wildlife"},
	"CO": {"Colorado", "Colorado Parks and Wildlife"},
	"CT": {"Connecticut", "Connecticut Department of Energy and Environmental Protection"},
	"DE": {"Delaware", "Delaware Division of Fish and Wildlife"},
	"FL": {"Florida", "Florida Fish and Wildlife Conservation Commission"},
	"GA": {"Georgia", "Georgia Department of Natural Resources"},
	"HI": {"Hawaii", "Hawaii Division of Forestry and Wildlife"},
	"ID": {"Idaho", "Idaho Department of Fish and Game"},
	"IL": {"Illinois", "Illinois Department of Natural Resources"},
	"IN": {"Indiana", "Indiana Department of Natural Resources"},
	"IA": {"Iowa", "Iowa Department of Natural Resources"},
	"KS": {"Kansas", "Kansas Department of Wildlife and Parks"},
	"KY": {"Kentucky", "Kentucky Department of Fish and Wildlife Resources"},
	"LA": {"Louisiana", "Louisiana Department of Wildlife and Fisheries"},
	"ME": {"Maine", "Maine Department of Inland Fisheries and Wildlife"},
	"MD": {"Maryland", "Maryland Department of Natural Resources"},
	"MA": {"Massachusetts", "Massachusetts Division of Fisheries and Wildlife"},
	"MI": {"Michigan", "Michigan Department of Natural Resources"},
	"MN": {"Minnesota", "Minnesota Department of Natural Resources"},
	"MS": {"Mississippi", "Mississippi Department of Wildlife, Fisheries, and Parks"},
	"MO": {"Missouri", "Missouri Department of Conservation"},
	"MT": {"Montana", "Montana Fish, Wildlife and Parks"},
	"NE": {"Nebraska", "Nebraska Game and Parks Commission"},
	"NV": {"Nevada", "Nevada Department of Wildlife"},
	"NH": {"New Hampshire", "New Hampshire Fish and Game Department"},
	"NJ": {"New Jersey", "New Jersey Division of Fish and Wildlife"},
	"NM": {"New Mexico", "New Mexico Department of Game and Fish"},
	"NY": {"New York", "New York State Department of Environmental Conservation"},
	"NC": {"North Carolina", "North Carolina Wildlife Resources Commission"},
	"ND": {"North Dakota", "North Dakota Game and Fish Department"},
	"OH": {"Ohio", "Ohio Department of Natural Resources"},
	"OK": {"Oklahoma", "Oklahoma Department of Wildlife Conservation"},
	"OR": {"Oregon", "Oregon Department of Fish and Wildlife"},
	"PA": {"Pennsylvania", "Pennsylvania Game Commission"},
	"RI": {"Rhode Island", "Rhode Island Division of Fish and Wildlife"},
	"SC": {"South Carolina", "South Carolina Department of Natural Resources"},
	"SD": {"South Dakota", "South Dakota Game, Fish and Parks"},
	"TN": {"Tennessee", "Tennessee Wildlife Resources Agency"},
	"TX": {"Texas", "Texas Parks and Wildlife Department"},
	"UT": {"Utah", "Utah Division of Wildlife Resources"},
	"VT": {"Vermont", "Vermont Fish and Wildlife Department"},
	"VA": {"Virginia", "Virginia Department of Wildlife Resources"},
	"WA": {"Washington", "Washington Department of Fish and Wildlife"},
	"WV": {"West Virginia", "West Virginia Division of Natural Resources"},
	"WI": {"Wisconsin", "Wisconsin Department of Natural Resources"},
	"WY": {"Wyoming", "Wyoming Game and Fish Department"},
}
