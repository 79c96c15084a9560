package catalog

var cities = map[string]City{
	"new-york-ny":     {Slug: "new-york-ny", Name: "New York", State: "NY", FullName: "New York, NY", Population: "8.8 million", Industries: []string{"Finance", "Technology", "Healthcare"}},
	"los-angeles-ca":  {Slug: "los-angeles-ca", Name: "Los Angeles", State: "CA", FullName: "Los Angeles, CA", Population: "4 million", Industries: []string{"Technology", "Healthcare", "Manufacturing"}},
	"chicago-il":      {Slug: "chicago-il", Name: "Chicago", State: "IL", FullName: "Chicago, IL", Population: "2.7 million", Industries: []string{"Finance", "Technology", "Education"}},
	"houston-tx":      {Slug: "houston-tx", Name: "Houston", State: "TX", FullName: "Houston, TX", Industries: []string{"Energy", "Healthcare", "Technology"}},
	"phoenix-az":      {Slug: "phoenix-az", Name: "Phoenix", State: "AZ", FullName: "Phoenix, AZ", Industries: []string{"Technology", "Healthcare", "Real Estate"}},
	"philadelphia-pa": {Slug: "philadelphia-pa", Name: "Philadelphia", State: "PA", FullName: "Philadelphia, PA", Industries: []string{"Healthcare", "Education", "Finance"}},
	"san-antonio-tx":  {Slug: "san-antonio-tx", Name: "San Antonio", State: "TX", FullName: "San Antonio, TX", Industries: []string{"Healthcare", "Technology", "Education"}},
	"san-diego-ca":    {Slug: "san-diego-ca", Name: "San Diego", State: "CA", FullName: "San Diego, CA", Industries: []string{"Technology", "Healthcare", "Manufacturing"}},
	"dallas-tx":       {Slug: "dallas-tx", Name: "Dallas", State: "TX", FullName: "Dallas, TX", Industries: []string{"Finance", "Technology", "Healthcare"}},
	"san-jose-ca":     {Slug: "san-jose-ca", Name: "San Jose", State: "CA", FullName: "San Jose, CA", Industries: []string{"Technology", "Manufacturing", "Finance"}},
	"austin-tx":       {Slug: "austin-tx", Name: "Austin", State: "TX", FullName: "Austin, TX", Industries: []string{"Technology", "Education", "Healthcare"}},
	"jacksonville-fl": {Slug: "jacksonville-fl", Name: "Jacksonville", State: "FL", FullName: "Jacksonville, FL", Industries: []string{"Logistics", "Healthcare", "Finance"}},
	"fort-worth-tx":   {Slug: "fort-worth-tx", Name: "Fort Worth", State: "TX", FullName: "Fort Worth, TX", Industries: []string{"Aerospace", "Energy", "Healthcare"}},
	"columbus-oh":     {Slug: "columbus-oh", Name: "Columbus", State: "OH", FullName: "Columbus, OH", Industries: []string{"Education", "Healthcare", "Technology"}},
	"indianapolis-in": {Slug: "indianapolis-in", Name: "Indianapolis", State: "IN", FullName: "Indianapolis, IN", Industries: []string{"Manufacturing", "Healthcare", "Technology"}},
	"charlotte-nc":    {Slug: "charlotte-nc", Name: "Charlotte", State: "NC", FullName: "Charlotte, NC", Industries: []string{"Finance", "Energy", "Technology"}},
	"san-francisco-ca": {Slug: "san-francisco-ca", Name: "San Francisco", State: "CA", FullName: "San Francisco, CA", Industries: []string{"Technology", "Finance", "Healthcare"}},
	"seattle-wa":      {Slug: "seattle-wa", Name: "Seattle", State: "WA", FullName: "Seattle, WA", Industries: []string{"Technology", "Aerospace", "Healthcare"}},
	"denver-co":       {Slug: "denver-co", Name: "Denver", State: "CO", FullName: "Denver, CO", Industries: []string{"Energy", "Technology", "Healthcare"}},
	"washington-dc":   {Slug: "washington-dc", Name: "Washington", State: "DC", FullName: "Washington, D.C.", Industries: []string{"Government", "Technology", "Healthcare"}},
	"nashville-tn":    {Slug: "nashville-tn", Name: "Nashville", State: "TN", FullName: "Nashville, TN", Industries: []string{"Healthcare", "Manufacturing", "Technology"}},
	"oklahoma-city-ok":{Slug: "oklahoma-city-ok", Name: "Oklahoma City", State: "OK", FullName: "Oklahoma City, OK", Industries: []string{"Energy", "Aerospace", "Healthcare"}},
	"el-paso-tx":      {Slug: "el-paso-tx", Name: "El Paso", State: "TX", FullName: "El Paso, TX", Industries: []string{"Manufacturing", "Healthcare", "Technology"}},
	"boston-ma":       {Slug: "boston-ma", Name: "Boston", State: "MA", FullName: "Boston, MA", Industries: []string{"Education", "Healthcare", "Technology"}},
	"portland-or":     {Slug: "portland-or", Name: "Portland", State: "OR", FullName: "Portland, OR", Industries: []string{"Technology", "Manufacturing", "Healthcare"}},
	"las-vegas-nv":    {Slug: "las-vegas-nv", Name: "Las Vegas", State: "NV", FullName: "Las Vegas, NV", Industries: []string{"Tourism", "Entertainment", "Healthcare"}},
	"detroit-mi":      {Slug: "detroit-mi", Name: "Detroit", State: "MI", FullName: "Detroit, MI", Industries: []string{"Automotive", "Manufacturing", "Technology"}},
	"memphis-tn":      {Slug: "memphis-tn", Name: "Memphis", State: "TN", FullName: "Memphis, TN", Industries: []string{"Logistics", "Healthcare", "Manufacturing"}},
	"louisville-ky":   {Slug: "louisville-ky", Name: "Louisville", State: "KY", FullName: "Louisville, KY", Industries: []string{"Manufacturing", "Healthcare", "Logistics"}},
	"baltimore-md":    {Slug: "baltimore-md", Name: "Baltimore", State: "MD", FullName: "Baltimore, MD", Industries: []string{"Healthcare", "Education", "Manufacturing"}},
	"milwaukee-wi":    {Slug: "milwaukee-wi", Name: "Milwaukee", State: "WI", FullName: "Milwaukee, WI", Industries: []string{"Manufacturing", "Finance", "Healthcare"}},
	"albuquerque-nm":  {Slug: "albuquerque-nm", Name: "Albuquerque", State: "NM", FullName: "Albuquerque, NM", Industries: []string{"Technology", "Healthcare", "Education"}},
	"tucson-az":       {Slug: "tucson-az", Name: "Tucson", State: "AZ", FullName: "Tucson, AZ", Industries: []string{"Education", "Healthcare", "Technology"}},
	"fresno-ca":       {Slug: "fresno-ca", Name: "Fresno", State: "CA", FullName: "Fresno, CA", Industries: []string{"Agriculture", "Healthcare", "Education"}},
	"sacramento-ca":   {Slug: "sacramento-ca", Name: "Sacramento", State: "CA", FullName: "Sacramento, CA", Industries: []string{"Government", "Healthcare", "Technology"}},
	"kansas-city-mo":  {Slug: "kansas-city-mo", Name: "Kansas City", State: "MO", FullName: "Kansas City, MO", Industries: []string{"Logistics", "Healthcare", "Technology"}},
	"mesa-az":         {Slug: "mesa-az", Name: "Mesa", State: "AZ", FullName: "Mesa, AZ", Industries: []string{"Technology", "Healthcare", "Manufacturing"}},
}
