package dataset

// Yearly typhoon counts for Hong Kong. Detail entries are illustrative.
var hongKong = []YearlyRecord{
	{2002, 6, &Detail{[]string{"Hagupit", "Fengshen", "Nuri"}, 185, DamageModerate}},
	{2003, 7, &Detail{[]string{"Dujuan", "Imbudo", "Krovanh"}, 195, DamageSevere}},
	{2004, 5, &Detail{[]string{"Conson", "Namcheon", "Aere"}, 175, DamageMinor}},
	{2005, 8, &Detail{[]string{"Haitang", "Matsa", "Khanun"}, 205, DamageSevere}},
	{2006, 7, &Detail{[]string{"Bilis", "Kaemi", "Saomai"}, 220, DamageCatastrophic}},
	{2007, 9, &Detail{[]string{"Pabuk", "Sepat", "Wipha"}, 210, DamageSevere}},
	{2008, 6, &Detail{[]string{"Fengshen", "Hagupit", "Nuri"}, 165, DamageModerate}},
	{2009, 5, &Detail{[]string{"Linfa", "Goni", "Parma"}, 155, DamageMinor}},
	{2010, 7, &Detail{[]string{"Fanapi", "Meranti", "Megi"}, 190, DamageModerate}},
	{2011, 8, &Detail{[]string{"Lupit", "Roke", "Nesat"}, 200, DamageSevere}},
	{2012, 6, &Detail{[]string{"Kai-tak", "Vicente", "Tembin"}, 180, DamageModerate}},
	{2013, 7, &Detail{[]string{"Fitow", "Utor", "Usagi"}, 185, DamageModerate}},
	{2014, 5, &Detail{[]string{"Rammasun", "Matmo", "Kalmaegi"}, 195, DamageSevere}},
	{2015, 8, &Detail{[]string{"Chan-hom", "Soudelor", "Dujuan"}, 215, DamageSevere}},
	{2016, 7, &Detail{[]string{"Nida", "Sarika", "Haima"}, 205, DamageSevere}},
	{2017, 9, &Detail{[]string{"Hato", "Pakhar", "Khanun"}, 225, DamageCatastrophic}},
	{2018, 8, &Detail{[]string{"Ewiniar", "Bebinca", "Mangkhut"}, 230, DamageCatastrophic}},
	{2019, 6, &Detail{[]string{"Wipha", "Bailu", "Tapah"}, 170, DamageModerate}},
	{2020, 5, &Detail{[]string{"Vongfong", "Nuri", "Noul"}, 160, DamageMinor}},
	{2021, 7, &Detail{[]string{"Surigae", "Kompasu", "Lionrock"}, 180, DamageModerate}},
	{2022, 6, &Detail{[]string{"Chaba", "Mulan", "Merbok"}, 175, DamageModerate}},
	{2023, 8, &Detail{[]string{"Talim", "Doksuri", "Khanun"}, 200, DamageSevere}},
}

// HongKong returns the built-in 2002-2023 table.
func HongKong() *Dataset {
	ds, err := New(hongKong)
	if err != nil {
		panic(err)
	}
	return ds
}
