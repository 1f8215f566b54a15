package location

import "github.com/trezcool/eneo/core/catalog"

// Provinces
const (
	KigaliCity       = "Kigali City"
	EasternProvince  = "Eastern Province"
	NorthernProvince = "Northern Province"
	SouthernProvince = "Southern Province"
	WesternProvince  = "Western Province"
)

// DefaultTable is the built-in Province -> District -> Sector table.
// Sector names repeat across districts (Remera, Nyarugenge, Rugendabari...); they are distinct sectors.
var DefaultTable = catalog.Table{
	KigaliCity: {
		"Gasabo": {
			"Bumbogo", "Gatsata", "Gikomero", "Gisozi", "Jabana", "Jali", "Kacyiru", "Kimihurura",
			"Kimironko", "Kinyinya", "Ndera", "Nduba", "Remera", "Rusororo", "Rutunga",
		},
		"Kicukiro": {
			"Gahanga", "Gatenga", "Gikondo", "Kagarama", "Kanombe", "Kicukiro", "Kigarama", "Masaka",
			"Niboye", "Nyarugunga",
		},
		"Nyarugenge": {
			"Gitega", "Kanyinya", "Kigali", "Kimisagara", "Mageragere", "Muhima", "Nyakabanda",
			"Nyamirambo", "Nyarugenge", "Rwezamenyo",
		},
	},
	EasternProvince: {
		"Bugesera": {
			"Gashora", "Juru", "Kamabuye", "Ntarama", "Mareba", "Mayange", "Musenyi", "Mwogo",
			"Ngeruka", "Nyamata", "Nyarugenge", "Rilima", "Ruhuha", "Rweru", "Shyara",
		},
		"Kayonza": {
			"Gahini", "Kabare", "Kabarondo", "Mukarange", "Murama", "Murundi", "Mwiri", "Ndego",
			"Nyamirama", "Rukara", "Ruramira", "Rwinkwavu",
		},
		"Rwamagana": {
			"Fumbwe", "Gahengeri", "Gishari", "Karenge", "Kigabiro", "Muhazi", "Munyaga", "Munyiginya",
			"Musha", "Muyumbu", "Mwulire", "Nyakaliro", "Nzige", "Rubona",
		},
	},
	NorthernProvince: {
		"Burera": {
			"Bungwe", "Butaro", "Cyanika", "Cyeru", "Gahunga", "Gatebe", "Gitovu", "Kagogo", "Kinoni",
			"Kinyababa", "Kivuye", "Nemba", "Rugarama", "Rugendabari", "Ruhunde", "Rusarabuye", "Rwerere",
		},
		"Musanze": {
			"Busogo", "Cyuve", "Gacaca", "Gashaki", "Gataraga", "Kimonyi", "Kinigi", "Muhoza", "Muko",
			"Musanze", "Nkotsi", "Nyange", "Remera", "Rwaza", "Shingiro",
		},
	},
	SouthernProvince: {
		"Huye": {
			"Gishamvu", "Huye", "Karama", "Kigoma", "Kinazi", "Maraba", "Mbazi", "Mukura", "Ngoma",
			"Ruhashya", "Rusatira", "Rwaniro", "Simbi", "Tumba",
		},
		"Muhanga": {
			"Cyeza", "Kabacuzi", "Kibangu", "Kiyumba", "Muhanga", "Mushishiro", "Nyabinoni", "Nyamabuye",
			"Nyarusange", "Rongi", "Rugendabari", "Shyogwe",
		},
	},
	WesternProvince: {
		"Rubavu": {
			"Bugeshi", "Busasamana", "Cyanzarwe", "Gisenyi", "Kanama", "Kanzenze", "Mudende", "Nyakiliba",
			"Nyamyumba", "Nyundo", "Rubavu", "Rugerero",
		},
		"Rusizi": {
			"Bugarama", "Butare", "Bweyeye", "Gashonga", "Giheke", "Gihundwe", "Gikundamvura", "Gitambi",
			"Kamembe", "Muganza", "Mururu", "Nkanka", "Nkombo", "Nkungu", "Nyakabuye", "Nyakarenzo",
			"Nzahaha", "Rwimbogo",
		},
	},
}
