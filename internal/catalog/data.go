package catalog

// standardTradeGoods is the canonical 36-row trade catalog: index, name,
// availability (trade-class codes or "All"), quantity dice ("nDxM"), base
// cost, purchase DM tokens, sale DM tokens.
var standardTradeGoods = []row{
	{"11", "Common Electronics", "All", "2Dx10", "20000", "In+2 Ht+3 Ri+1", "Ni+2 Lt+1 Po+1"},
	{"12", "Common Industrial Goods", "All", "2Dx10", "10000", "Na+2 In+5", "Ni+3 Hi+2"},
	{"13", "Common Manufactured Goods", "All", "2Dx10", "20000", "Na+2 In+5", "Ni+3 Hi+2"},
	{"14", "Common Raw Materials", "All", "2Dx20", "5000", "Ag+3 Ga+2", "In+2 Po+2"},
	{"15", "Common Consumables", "All", "2Dx20", "500", "Ag+3 Wa+2 Ga+1 As-4", "As+1 Fl+1 Ic+1 Hi+1"},
	{"16", "Common Ore", "All", "2Dx20", "1000", "As+4", "In+3 Ni+1"},
	{"21", "Advanced Electronics", "Ht In", "1Dx5", "100000", "In+2 Ht+3", "Ri+2 Ni+1 As+3"},
	{"22", "Advanced Machine Parts", "Ht In", "1Dx5", "75000", "In+2 Ht+1", "As+2 Ni+1"},
	{"23", "Advanced Manufactured Goods", "Ht In", "1Dx5", "100000", "In+1", "Hi+1 Ri+2"},
	{"24", "Advanced Weapons", "Ht In", "1Dx5", "150000", "Ht+2", "Po+1 Az+2 Rz+4"},
	{"25", "Advanced Vehicles", "Ht In", "1Dx5", "180000", "Ht+2", "Ri+2 As+2"},
	{"26", "Biochemicals", "Ag Wa", "1Dx5", "50000", "Ag+1 Wa+2", "In+2"},
	{"31", "Crystals & Gems", "As De Ic", "1Dx5", "20000", "As+2 De+1 Ic+1", "In+3 Ri+2"},
	{"32", "Cybernetics", "Ht", "1Dx1", "250000", "Ht+1", "As+1 Ic+1 Ri+2"},
	{"33", "Live Animals", "Ag Ga", "1Dx10", "10000", "Ag+2", "Lo+3"},
	{"34", "Luxury Consumables", "Ag Ga Wa", "1Dx10", "20000", "Ag+2 Wa+1", "Ri+2 Hi+2"},
	{"35", "Luxury Goods", "Hi", "1Dx1", "200000", "Hi+1", "Ri+4"},
	{"36", "Medical Supplies", "Ht Hi", "1Dx5", "50000", "Ht+2", "In+2 Po+1 Ri+1"},
	{"41", "Petrochemicals", "De Fl Ic Wa", "1Dx10", "10000", "De+2", "In+2 Ag+1 Lt+2"},
	{"42", "Pharmaceuticals", "As De Hi Wa", "1Dx1", "100000", "As+2 Hi+1", "Ri+2 Lt+1"},
	{"43", "Polymers", "In", "1Dx10", "7000", "In+1", "Ri+2 Ni+1"},
	{"44", "Precious Metals", "As De Ic Fl", "1Dx1", "50000", "As+3 De+1 Ic+2", "In+2 Ri+3 Ht+1"},
	{"45", "Radioactives", "As De Lo", "1Dx1", "1000000", "As+2 Lo+2", "In+3 Ht+1 Ni-2 Ag-3"},
	{"46", "Robots", "In", "1Dx5", "400000", "In+1", "Ag+2 Ht+1"},
	{"51", "Spices", "De Ga Wa", "1Dx10", "6000", "De+2", "Hi+2 Ri+3 Po+3"},
	{"52", "Textiles", "Ag Ni", "1Dx20", "3000", "Ag+7", "Hi+3 Na+2"},
	{"53", "Uncommon Ore", "As Ic", "1Dx20", "5000", "As+4", "In+3 Ni+1"},
	{"54", "Uncommon Raw Materials", "Ag De Wa", "1Dx10", "20000", "Ag+2 Wa+1", "In+2 Ht+1"},
	{"55", "Wood", "Ag Ga", "1Dx20", "1000", "Ag+6", "Ri+2 In+1"},
	{"56", "Vehicles", "In Ht", "1Dx10", "15000", "In+2 Ht+1", "Ni+2 Hi+1"},
	{"61", "Illegal Biochemicals", "Ag Wa", "1Dx5", "50000", "Wa+2", "In+6"},
	{"62", "Illegal Cybernetics", "Ht", "1Dx1", "250000", "Ht+1", "As+4 Ic+4 Ri+8 Az+6 Rz+6"},
	{"63", "Illegal Drugs", "As De Hi Wa", "1Dx1", "100000", "As+1 De+1 Ga+1 Wa+1", "Ri+6 Hi+6"},
	{"64", "Illegal Luxuries", "Ag Ga Wa", "1Dx1", "50000", "Ag+2 Wa+1", "Ri+6 Hi+4"},
	{"65", "Illegal Weapons", "Ht In", "1Dx5", "150000", "Ht+2", "Po+6 Az+8 Rz+10"},
	{"66", "Exotics", "", "1Dx1", "1000000", "", ""},
}
