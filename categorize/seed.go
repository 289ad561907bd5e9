package categorize

// seedCorpus maps merchant descriptions to the category they teach the
// classifier. Indian card statements dominate the corpus; a handful of
// generic entries round out each class.
var seedCorpus = []struct {
	Description string
	Category    string
}{
	{"UBER RIDES BANGALORE", "Travel"},
	{"UBER TRIP HELP.UBER.COM", "Travel"},
	{"OLA CABS BANGALORE", "Travel"},
	{"OLACABS MUMBAI", "Travel"},
	{"RAPIDO BIKE TAXI", "Travel"},
	{"ZOOMCAR RENTALS", "Travel"},
	{"INDIGO AIRLINES GURGAON", "Travel"},
	{"SPICEJET LTD", "Travel"},
	{"IRCTC RAIL TICKET", "Travel"},
	{"MAKEMYTRIP INDIA", "Travel"},

	{"STARBUCKS COFFEE MUMBAI", "Food & Drink"},
	{"SWIGGY ORDER BANGALORE", "Food & Drink"},
	{"SWIGGY INSTAMART FOOD", "Food & Drink"},
	{"ZOMATO ONLINE ORDER", "Food & Drink"},
	{"ZOMATO LTD GURGAON", "Food & Drink"},
	{"DOMINOS PIZZA", "Food & Drink"},
	{"KFC RESTAURANT", "Food & Drink"},
	{"MCDONALDS DELHI", "Food & Drink"},

	{"BIGBASKET GROCERIES", "Groceries"},
	{"BLINKIT DELIVERY", "Groceries"},
	{"ZEPTO MARKETPLACE", "Groceries"},
	{"DMART AVENUE SUPERMARTS", "Groceries"},
	{"RELIANCE FRESH STORE", "Groceries"},

	{"AMAZON PAY INDIA", "Shopping"},
	{"AMAZON RETAIL PURCHASE", "Shopping"},
	{"FLIPKART INTERNET PVT", "Shopping"},
	{"FLIPKART PAYMENTS", "Shopping"},
	{"MYNTRA DESIGNS", "Shopping"},
	{"AJIO FASHION", "Shopping"},
	{"NYKAA COSMETICS", "Shopping"},

	{"NETFLIX SUBSCRIPTION", "Bills"},
	{"SPOTIFY PREMIUM", "Bills"},
	{"HOTSTAR DISNEY PLUS", "Bills"},
	{"AIRTEL RECHARGE PREPAID", "Bills"},
	{"JIO RECHARGE MUMBAI", "Bills"},
	{"TATA POWER ELECTRICITY BILL", "Bills"},

	{"APOLLO PHARMACY CHENNAI", "Health"},
	{"PHARMEASY MEDICINES", "Health"},
	{"NETMEDS ONLINE PHARMACY", "Health"},
	{"PRACTO CONSULTATION", "Health"},

	{"ATM WITHDRAWAL CASH", "Other"},
	{"ATM WDL FEE", "Other"},
	{"CASH DEPOSIT BRANCH", "Other"},
}
