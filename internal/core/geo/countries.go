package geo

// Continent names. The reference table maps every country to exactly one.
const (
	Africa       = "Africa"
	Antarctica   = "Antarctica"
	Asia         = "Asia"
	Europe       = "Europe"
	NorthAmerica = "North America"
	Oceania      = "Oceania"
	SouthAmerica = "South America"
)

// ContinentCount is the number of continents on the planet.
const ContinentCount = 7

// Country is a single row of the reference table.
type Country struct {
	Name      string
	Code      string // ISO 3166-1 alpha-2
	Continent string
	Aliases   []string // names used by world map geography data
}

// countries is the static reference table. Keep sorted by name.
var countries = []Country{
	{Name: "Afghanistan", Code: "AF", Continent: Asia},
	{Name: "Albania", Code: "AL", Continent: Europe},
	{Name: "Algeria", Code: "DZ", Continent: Africa},
	{Name: "Andorra", Code: "AD", Continent: Europe},
	{Name: "Angola", Code: "AO", Continent: Africa},
	{Name: "Antarctica", Code: "AQ", Continent: Antarctica},
	{Name: "Antigua and Barbuda", Code: "AG", Continent: NorthAmerica},
	{Name: "Argentina", Code: "AR", Continent: SouthAmerica},
	{Name: "Armenia", Code: "AM", Continent: Asia},
	{Name: "Australia", Code: "AU", Continent: Oceania},
	{Name: "Austria", Code: "AT", Continent: Europe},
	{Name: "Azerbaijan", Code: "AZ", Continent: Asia},
	{Name: "Bahamas", Code: "BS", Continent: NorthAmerica, Aliases: []string{"The Bahamas"}},
	{Name: "Bahrain", Code: "BH", Continent: Asia},
	{Name: "Bangladesh", Code: "BD", Continent: Asia},
	{Name: "Barbados", Code: "BB", Continent: NorthAmerica},
	{Name: "Belarus", Code: "BY", Continent: Europe},
	{Name: "Belgium", Code: "BE", Continent: Europe},
	{Name: "Belize", Code: "BZ", Continent: NorthAmerica},
	{Name: "Benin", Code: "BJ", Continent: Africa},
	{Name: "Bhutan", Code: "BT", Continent: Asia},
	{Name: "Bolivia", Code: "BO", Continent: SouthAmerica},
	{Name: "Bosnia and Herzegovina", Code: "BA", Continent: Europe, Aliases: []string{"Bosnia and Herz."}},
	{Name: "Botswana", Code: "BW", Continent: Africa},
	{Name: "Brazil", Code: "BR", Continent: SouthAmerica},
	{Name: "Brunei", Code: "BN", Continent: Asia},
	{Name: "Bulgaria", Code: "BG", Continent: Europe},
	{Name: "Burkina Faso", Code: "BF", Continent: Africa},
	{Name: "Burundi", Code: "BI", Continent: Africa},
	{Name: "Cabo Verde", Code: "CV", Continent: Africa, Aliases: []string{"Cape Verde"}},
	{Name: "Cambodia", Code: "KH", Continent: Asia},
	{Name: "Cameroon", Code: "CM", Continent: Africa},
	{Name: "Canada", Code: "CA", Continent: NorthAmerica},
	{Name: "Central African Republic", Code: "CF", Continent: Africa, Aliases: []string{"Central African Rep."}},
	{Name: "Chad", Code: "TD", Continent: Africa},
	{Name: "Chile", Code: "CL", Continent: SouthAmerica},
	{Name: "China", Code: "CN", Continent: Asia},
	{Name: "Colombia", Code: "CO", Continent: SouthAmerica},
	{Name: "Comoros", Code: "KM", Continent: Africa},
	{Name: "Congo", Code: "CG", Continent: Africa, Aliases: []string{"Republic of the Congo"}},
	{Name: "Costa Rica", Code: "CR", Continent: NorthAmerica},
	{Name: "Croatia", Code: "HR", Continent: Europe},
	{Name: "Cuba", Code: "CU", Continent: NorthAmerica},
	{Name: "Cyprus", Code: "CY", Continent: Europe, Aliases: []string{"N. Cyprus"}},
	{Name: "Czech Republic", Code: "CZ", Continent: Europe, Aliases: []string{"Czechia"}},
	{Name: "Democratic Republic of the Congo", Code: "CD", Continent: Africa, Aliases: []string{"Dem. Rep. Congo", "DR Congo"}},
	{Name: "Denmark", Code: "DK", Continent: Europe},
	{Name: "Djibouti", Code: "DJ", Continent: Africa},
	{Name: "Dominica", Code: "DM", Continent: NorthAmerica},
	{Name: "Dominican Republic", Code: "DO", Continent: NorthAmerica, Aliases: []string{"Dominican Rep."}},
	{Name: "Ecuador", Code: "EC", Continent: SouthAmerica},
	{Name: "Egypt", Code: "EG", Continent: Africa},
	{Name: "El Salvador", Code: "SV", Continent: NorthAmerica},
	{Name: "Equatorial Guinea", Code: "GQ", Continent: Africa, Aliases: []string{"Eq. Guinea"}},
	{Name: "Eritrea", Code: "ER", Continent: Africa},
	{Name: "Estonia", Code: "EE", Continent: Europe},
	{Name: "Eswatini", Code: "SZ", Continent: Africa, Aliases: []string{"Swaziland"}},
	{Name: "Ethiopia", Code: "ET", Continent: Africa},
	{Name: "Fiji", Code: "FJ", Continent: Oceania},
	{Name: "Finland", Code: "FI", Continent: Europe},
	{Name: "France", Code: "FR", Continent: Europe},
	{Name: "Gabon", Code: "GA", Continent: Africa},
	{Name: "Gambia", Code: "GM", Continent: Africa, Aliases: []string{"The Gambia"}},
	{Name: "Georgia", Code: "GE", Continent: Asia},
	{Name: "Germany", Code: "DE", Continent: Europe},
	{Name: "Ghana", Code: "GH", Continent: Africa},
	{Name: "Greece", Code: "GR", Continent: Europe},
	{Name: "Greenland", Code: "GL", Continent: NorthAmerica},
	{Name: "Grenada", Code: "GD", Continent: NorthAmerica},
	{Name: "Guatemala", Code: "GT", Continent: NorthAmerica},
	{Name: "Guinea", Code: "GN", Continent: Africa},
	{Name: "Guinea-Bissau", Code: "GW", Continent: Africa},
	{Name: "Guyana", Code: "GY", Continent: SouthAmerica},
	{Name: "Haiti", Code: "HT", Continent: NorthAmerica},
	{Name: "Honduras", Code: "HN", Continent: NorthAmerica},
	{Name: "Hungary", Code: "HU", Continent: Europe},
	{Name: "Iceland", Code: "IS", Continent: Europe},
	{Name: "India", Code: "IN", Continent: Asia},
	{Name: "Indonesia", Code: "ID", Continent: Asia},
	{Name: "Iran", Code: "IR", Continent: Asia},
	{Name: "Iraq", Code: "IQ", Continent: Asia},
	{Name: "Ireland", Code: "IE", Continent: Europe},
	{Name: "Israel", Code: "IL", Continent: Asia},
	{Name: "Italy", Code: "IT", Continent: Europe},
	{Name: "Ivory Coast", Code: "CI", Continent: Africa, Aliases: []string{"Côte d'Ivoire", "Cote d'Ivoire"}},
	{Name: "Jamaica", Code: "JM", Continent: NorthAmerica},
	{Name: "Japan", Code: "JP", Continent: Asia},
	{Name: "Jordan", Code: "JO", Continent: Asia},
	{Name: "Kazakhstan", Code: "KZ", Continent: Asia},
	{Name: "Kenya", Code: "KE", Continent: Africa},
	{Name: "Kiribati", Code: "KI", Continent: Oceania},
	{Name: "Kosovo", Code: "XK", Continent: Europe},
	{Name: "Kuwait", Code: "KW", Continent: Asia},
	{Name: "Kyrgyzstan", Code: "KG", Continent: Asia},
	{Name: "Laos", Code: "LA", Continent: Asia},
	{Name: "Latvia", Code: "LV", Continent: Europe},
	{Name: "Lebanon", Code: "LB", Continent: Asia},
	{Name: "Lesotho", Code: "LS", Continent: Africa},
	{Name: "Liberia", Code: "LR", Continent: Africa},
	{Name: "Libya", Code: "LY", Continent: Africa},
	{Name: "Liechtenstein", Code: "LI", Continent: Europe},
	{Name: "Lithuania", Code: "LT", Continent: Europe},
	{Name: "Luxembourg", Code: "LU", Continent: Europe},
	{Name: "Madagascar", Code: "MG", Continent: Africa},
	{Name: "Malawi", Code: "MW", Continent: Africa},
	{Name: "Malaysia", Code: "MY", Continent: Asia},
	{Name: "Maldives", Code: "MV", Continent: Asia},
	{Name: "Mali", Code: "ML", Continent: Africa},
	{Name: "Malta", Code: "MT", Continent: Europe},
	{Name: "Marshall Islands", Code: "MH", Continent: Oceania},
	{Name: "Mauritania", Code: "MR", Continent: Africa},
	{Name: "Mauritius", Code: "MU", Continent: Africa},
	{Name: "Mexico", Code: "MX", Continent: NorthAmerica},
	{Name: "Micronesia", Code: "FM", Continent: Oceania},
	{Name: "Moldova", Code: "MD", Continent: Europe},
	{Name: "Monaco", Code: "MC", Continent: Europe},
	{Name: "Mongolia", Code: "MN", Continent: Asia},
	{Name: "Montenegro", Code: "ME", Continent: Europe},
	{Name: "Morocco", Code: "MA", Continent: Africa, Aliases: []string{"W. Sahara", "Western Sahara"}},
	{Name: "Mozambique", Code: "MZ", Continent: Africa},
	{Name: "Myanmar", Code: "MM", Continent: Asia, Aliases: []string{"Burma"}},
	{Name: "Namibia", Code: "NA", Continent: Africa},
	{Name: "Nauru", Code: "NR", Continent: Oceania},
	{Name: "Nepal", Code: "NP", Continent: Asia},
	{Name: "Netherlands", Code: "NL", Continent: Europe, Aliases: []string{"The Netherlands", "Holland"}},
	{Name: "New Zealand", Code: "NZ", Continent: Oceania},
	{Name: "Nicaragua", Code: "NI", Continent: NorthAmerica},
	{Name: "Niger", Code: "NE", Continent: Africa},
	{Name: "Nigeria", Code: "NG", Continent: Africa},
	{Name: "North Korea", Code: "KP", Continent: Asia},
	{Name: "North Macedonia", Code: "MK", Continent: Europe, Aliases: []string{"Macedonia"}},
	{Name: "Norway", Code: "NO", Continent: Europe},
	{Name: "Oman", Code: "OM", Continent: Asia},
	{Name: "Pakistan", Code: "PK", Continent: Asia},
	{Name: "Palau", Code: "PW", Continent: Oceania},
	{Name: "Palestine", Code: "PS", Continent: Asia},
	{Name: "Panama", Code: "PA", Continent: NorthAmerica},
	{Name: "Papua New Guinea", Code: "PG", Continent: Oceania},
	{Name: "Paraguay", Code: "PY", Continent: SouthAmerica},
	{Name: "Peru", Code: "PE", Continent: SouthAmerica},
	{Name: "Philippines", Code: "PH", Continent: Asia},
	{Name: "Poland", Code: "PL", Continent: Europe},
	{Name: "Portugal", Code: "PT", Continent: Europe},
	{Name: "Qatar", Code: "QA", Continent: Asia},
	{Name: "Romania", Code: "RO", Continent: Europe},
	{Name: "Russia", Code: "RU", Continent: Europe, Aliases: []string{"Russian Federation"}},
	{Name: "Rwanda", Code: "RW", Continent: Africa},
	{Name: "Saint Kitts and Nevis", Code: "KN", Continent: NorthAmerica},
	{Name: "Saint Lucia", Code: "LC", Continent: NorthAmerica},
	{Name: "Saint Vincent and the Grenadines", Code: "VC", Continent: NorthAmerica},
	{Name: "Samoa", Code: "WS", Continent: Oceania},
	{Name: "San Marino", Code: "SM", Continent: Europe},
	{Name: "Sao Tome and Principe", Code: "ST", Continent: Africa},
	{Name: "Saudi Arabia", Code: "SA", Continent: Asia},
	{Name: "Senegal", Code: "SN", Continent: Africa},
	{Name: "Serbia", Code: "RS", Continent: Europe},
	{Name: "Seychelles", Code: "SC", Continent: Africa},
	{Name: "Sierra Leone", Code: "SL", Continent: Africa},
	{Name: "Singapore", Code: "SG", Continent: Asia},
	{Name: "Slovakia", Code: "SK", Continent: Europe},
	{Name: "Slovenia", Code: "SI", Continent: Europe},
	{Name: "Solomon Islands", Code: "SB", Continent: Oceania, Aliases: []string{"Solomon Is."}},
	{Name: "Somalia", Code: "SO", Continent: Africa, Aliases: []string{"Somaliland"}},
	{Name: "South Africa", Code: "ZA", Continent: Africa},
	{Name: "South Korea", Code: "KR", Continent: Asia, Aliases: []string{"Korea"}},
	{Name: "South Sudan", Code: "SS", Continent: Africa, Aliases: []string{"S. Sudan"}},
	{Name: "Spain", Code: "ES", Continent: Europe},
	{Name: "Sri Lanka", Code: "LK", Continent: Asia},
	{Name: "Sudan", Code: "SD", Continent: Africa},
	{Name: "Suriname", Code: "SR", Continent: SouthAmerica},
	{Name: "Sweden", Code: "SE", Continent: Europe},
	{Name: "Switzerland", Code: "CH", Continent: Europe},
	{Name: "Syria", Code: "SY", Continent: Asia},
	{Name: "Taiwan", Code: "TW", Continent: Asia},
	{Name: "Tajikistan", Code: "TJ", Continent: Asia},
	{Name: "Tanzania", Code: "TZ", Continent: Africa},
	{Name: "Thailand", Code: "TH", Continent: Asia},
	{Name: "Timor-Leste", Code: "TL", Continent: Asia, Aliases: []string{"East Timor"}},
	{Name: "Togo", Code: "TG", Continent: Africa},
	{Name: "Tonga", Code: "TO", Continent: Oceania},
	{Name: "Trinidad and Tobago", Code: "TT", Continent: NorthAmerica},
	{Name: "Tunisia", Code: "TN", Continent: Africa},
	{Name: "Turkey", Code: "TR", Continent: Asia, Aliases: []string{"Türkiye"}},
	{Name: "Turkmenistan", Code: "TM", Continent: Asia},
	{Name: "Tuvalu", Code: "TV", Continent: Oceania},
	{Name: "Uganda", Code: "UG", Continent: Africa},
	{Name: "Ukraine", Code: "UA", Continent: Europe},
	{Name: "United Arab Emirates", Code: "AE", Continent: Asia, Aliases: []string{"UAE"}},
	{Name: "United Kingdom", Code: "GB", Continent: Europe, Aliases: []string{"UK", "Great Britain"}},
	{Name: "United States", Code: "US", Continent: NorthAmerica, Aliases: []string{"United States of America", "USA"}},
	{Name: "Uruguay", Code: "UY", Continent: SouthAmerica},
	{Name: "Uzbekistan", Code: "UZ", Continent: Asia},
	{Name: "Vanuatu", Code: "VU", Continent: Oceania},
	{Name: "Vatican City", Code: "VA", Continent: Europe, Aliases: []string{"Vatican"}},
	{Name: "Venezuela", Code: "VE", Continent: SouthAmerica},
	{Name: "Vietnam", Code: "VN", Continent: Asia},
	{Name: "Yemen", Code: "YE", Continent: Asia},
	{Name: "Zambia", Code: "ZM", Continent: Africa},
	{Name: "Zimbabwe", Code: "ZW", Continent: Africa},
}
