package prices

import "krishiseva/internal/models"

// demoPrices is a fixed sample of mandi prices covering the major states.
// ArrivalDate is filled in when the dataset is served.
var demoPrices = []models.CropPrice{
	{State: "Punjab", District: "Ludhiana", Market: "Ludhiana Mandi", Commodity: "Wheat", Variety: "Sharbati", MinPrice: 2050, MaxPrice: 2150, ModalPrice: 2100},
	{State: "Punjab", District: "Ludhiana", Market: "Ludhiana Mandi", Commodity: "Rice", Variety: "Basmati", MinPrice: 3500, MaxPrice: 3800, ModalPrice: 3650},
	{State: "Punjab", District: "Amritsar", Market: "Amritsar Mandi", Commodity: "Wheat", Variety: "Lokwan", MinPrice: 2000, MaxPrice: 2100, ModalPrice: 2050},
	{State: "Punjab", District: "Amritsar", Market: "Amritsar Mandi", Commodity: "Rice", Variety: "Basmati 1121", MinPrice: 4000, MaxPrice: 4200, ModalPrice: 4100},
	{State: "Punjab", District: "Jalandhar", Market: "Jalandhar Mandi", Commodity: "Wheat", Variety: "Sharbati", MinPrice: 2040, MaxPrice: 2140, ModalPrice: 2090},
	{State: "Punjab", District: "Patiala", Market: "Patiala Mandi", Commodity: "Rice", Variety: "Pusa Basmati", MinPrice: 3600, MaxPrice: 3900, ModalPrice: 3750},

	{State: "Haryana", District: "Karnal", Market: "Karnal Mandi", Commodity: "Wheat", Variety: "Lokwan", MinPrice: 2000, MaxPrice: 2100, ModalPrice: 2050},
	{State: "Haryana", District: "Karnal", Market: "Karnal Mandi", Commodity: "Rice", Variety: "Basmati", MinPrice: 3550, MaxPrice: 3850, ModalPrice: 3700},
	{State: "Haryana", District: "Ambala", Market: "Ambala Mandi", Commodity: "Wheat", Variety: "Sharbati", MinPrice: 2030, MaxPrice: 2130, ModalPrice: 2080},
	{State: "Haryana", District: "Panipat", Market: "Panipat Mandi", Commodity: "Rice", Variety: "Basmati", MinPrice: 3500, MaxPrice: 3800, ModalPrice: 3650},
	{State: "Haryana", District: "Hisar", Market: "Hisar Mandi", Commodity: "Cotton", Variety: "Medium Staple", MinPrice: 5400, MaxPrice: 5700, ModalPrice: 5550},

	{State: "Uttar Pradesh", District: "Meerut", Market: "Meerut Mandi", Commodity: "Wheat", Variety: "Sharbati", MinPrice: 2020, MaxPrice: 2120, ModalPrice: 2070},
	{State: "Uttar Pradesh", District: "Meerut", Market: "Meerut Mandi", Commodity: "Rice", Variety: "Sona Masoori", MinPrice: 2800, MaxPrice: 3000, ModalPrice: 2900},
	{State: "Uttar Pradesh", District: "Agra", Market: "Agra Mandi", Commodity: "Wheat", Variety: "Lokwan", MinPrice: 2010, MaxPrice: 2110, ModalPrice: 2060},
	{State: "Uttar Pradesh", District: "Lucknow", Market: "Lucknow Mandi", Commodity: "Rice", Variety: "Basmati", MinPrice: 3450, MaxPrice: 3750, ModalPrice: 3600},
	{State: "Uttar Pradesh", District: "Varanasi", Market: "Varanasi Mandi", Commodity: "Wheat", Variety: "Sharbati", MinPrice: 2000, MaxPrice: 2100, ModalPrice: 2050},
	{State: "Uttar Pradesh", District: "Kanpur", Market: "Kanpur Mandi", Commodity: "Potato", Variety: "Local", MinPrice: 850, MaxPrice: 1050, ModalPrice: 950},

	{State: "Maharashtra", District: "Nashik", Market: "Nashik Mandi", Commodity: "Tomato", Variety: "Hybrid", MinPrice: 1500, MaxPrice: 2000, ModalPrice: 1750},
	{State: "Maharashtra", District: "Nashik", Market: "Nashik Mandi", Commodity: "Onion", Variety: "Red", MinPrice: 1200, MaxPrice: 1500, ModalPrice: 1350},
	{State: "Maharashtra", District: "Pune", Market: "Pune Mandi", Commodity: "Onion", Variety: "Red", MinPrice: 1200, MaxPrice: 1500, ModalPrice: 1350},
	{State: "Maharashtra", District: "Pune", Market: "Pune Mandi", Commodity: "Tomato", Variety: "Hybrid", MinPrice: 1450, MaxPrice: 1950, ModalPrice: 1700},
	{State: "Maharashtra", District: "Mumbai", Market: "Mumbai Mandi", Commodity: "Potato", Variety: "Local", MinPrice: 900, MaxPrice: 1100, ModalPrice: 1000},
	{State: "Maharashtra", District: "Nagpur", Market: "Nagpur Mandi", Commodity: "Cotton", Variety: "Medium Staple", MinPrice: 5500, MaxPrice: 5800, ModalPrice: 5650},
	{State: "Maharashtra", District: "Aurangabad", Market: "Aurangabad Mandi", Commodity: "Onion", Variety: "Red", MinPrice: 1150, MaxPrice: 1450, ModalPrice: 1300},

	{State: "Karnataka", District: "Bangalore", Market: "Bangalore Mandi", Commodity: "Potato", Variety: "Local", MinPrice: 800, MaxPrice: 1000, ModalPrice: 900},
	{State: "Karnataka", District: "Bangalore", Market: "Bangalore Mandi", Commodity: "Tomato", Variety: "Hybrid", MinPrice: 1400, MaxPrice: 1900, ModalPrice: 1650},
	{State: "Karnataka", District: "Mysore", Market: "Mysore Mandi", Commodity: "Rice", Variety: "Sona Masoori", MinPrice: 2750, MaxPrice: 2950, ModalPrice: 2850},
	{State: "Karnataka", District: "Mangalore", Market: "Mangalore Mandi", Commodity: "Onion", Variety: "Red", MinPrice: 1250, MaxPrice: 1550, ModalPrice: 1400},
	{State: "Karnataka", District: "Hubli", Market: "Hubli Mandi", Commodity: "Cotton", Variety: "Medium Staple", MinPrice: 5450, MaxPrice: 5750, ModalPrice: 5600},

	{State: "Gujarat", District: "Ahmedabad", Market: "Ahmedabad Mandi", Commodity: "Cotton", Variety: "Medium Staple", MinPrice: 5500, MaxPrice: 5800, ModalPrice: 5650},
	{State: "Gujarat", District: "Ahmedabad", Market: "Ahmedabad Mandi", Commodity: "Wheat", Variety: "Lokwan", MinPrice: 2030, MaxPrice: 2130, ModalPrice: 2080},
	{State: "Gujarat", District: "Surat", Market: "Surat Mandi", Commodity: "Cotton", Variety: "Long Staple", MinPrice: 5600, MaxPrice: 5900, ModalPrice: 5750},
	{State: "Gujarat", District: "Rajkot", Market: "Rajkot Mandi", Commodity: "Onion", Variety: "Red", MinPrice: 1180, MaxPrice: 1480, ModalPrice: 1330},
	{State: "Gujarat", District: "Vadodara", Market: "Vadodara Mandi", Commodity: "Wheat", Variety: "Sharbati", MinPrice: 2040, MaxPrice: 2140, ModalPrice: 2090},

	{State: "Rajasthan", District: "Jaipur", Market: "Jaipur Mandi", Commodity: "Wheat", Variety: "Lokwan", MinPrice: 2010, MaxPrice: 2110, ModalPrice: 2060},
	{State: "Rajasthan", District: "Jaipur", Market: "Jaipur Mandi", Commodity: "Potato", Variety: "Local", MinPrice: 820, MaxPrice: 1020, ModalPrice: 920},
	{State: "Rajasthan", District: "Jodhpur", Market: "Jodhpur Mandi", Commodity: "Wheat", Variety: "Sharbati", MinPrice: 2020, MaxPrice: 2120, ModalPrice: 2070},
	{State: "Rajasthan", District: "Kota", Market: "Kota Mandi", Commodity: "Cotton", Variety: "Medium Staple", MinPrice: 5400, MaxPrice: 5700, ModalPrice: 5550},
	{State: "Rajasthan", District: "Udaipur", Market: "Udaipur Mandi", Commodity: "Onion", Variety: "White", MinPrice: 1100, MaxPrice: 1400, ModalPrice: 1250},

	{State: "Madhya Pradesh", District: "Indore", Market: "Indore Mandi", Commodity: "Wheat", Variety: "Sharbati", MinPrice: 2025, MaxPrice: 2125, ModalPrice: 2075},
	{State: "Madhya Pradesh", District: "Indore", Market: "Indore Mandi", Commodity: "Onion", Variety: "Red", MinPrice: 1150, MaxPrice: 1450, ModalPrice: 1300},
	{State: "Madhya Pradesh", District: "Bhopal", Market: "Bhopal Mandi", Commodity: "Wheat", Variety: "Lokwan", MinPrice: 2015, MaxPrice: 2115, ModalPrice: 2065},
	{State: "Madhya Pradesh", District: "Jabalpur", Market: "Jabalpur Mandi", Commodity: "Rice", Variety: "Sona Masoori", MinPrice: 2780, MaxPrice: 2980, ModalPrice: 2880},
	{State: "Madhya Pradesh", District: "Gwalior", Market: "Gwalior Mandi", Commodity: "Potato", Variety: "Local", MinPrice: 830, MaxPrice: 1030, ModalPrice: 930},

	{State: "Tamil Nadu", District: "Chennai", Market: "Chennai Mandi", Commodity: "Rice", Variety: "Sona Masoori", MinPrice: 2820, MaxPrice: 3020, ModalPrice: 2920},
	{State: "Tamil Nadu", District: "Chennai", Market: "Chennai Mandi", Commodity: "Tomato", Variety: "Hybrid", MinPrice: 1480, MaxPrice: 1980, ModalPrice: 1730},
	{State: "Tamil Nadu", District: "Coimbatore", Market: "Coimbatore Mandi", Commodity: "Rice", Variety: "Ponni", MinPrice: 2700, MaxPrice: 2900, ModalPrice: 2800},
	{State: "Tamil Nadu", District: "Madurai", Market: "Madurai Mandi", Commodity: "Onion", Variety: "Red", MinPrice: 1220, MaxPrice: 1520, ModalPrice: 1370},
	{State: "Tamil Nadu", District: "Salem", Market: "Salem Mandi", Commodity: "Potato", Variety: "Local", MinPrice: 810, MaxPrice: 1010, ModalPrice: 910},

	{State: "West Bengal", District: "Kolkata", Market: "Kolkata Mandi", Commodity: "Rice", Variety: "Gobindobhog", MinPrice: 3200, MaxPrice: 3500, ModalPrice: 3350},
	{State: "West Bengal", District: "Kolkata", Market: "Kolkata Mandi", Commodity: "Potato", Variety: "Local", MinPrice: 840, MaxPrice: 1040, ModalPrice: 940},
	{State: "West Bengal", District: "Siliguri", Market: "Siliguri Mandi", Commodity: "Rice", Variety: "Basmati", MinPrice: 3400, MaxPrice: 3700, ModalPrice: 3550},
	{State: "West Bengal", District: "Durgapur", Market: "Durgapur Mandi", Commodity: "Onion", Variety: "Red", MinPrice: 1170, MaxPrice: 1470, ModalPrice: 1320},

	{State: "Andhra Pradesh", District: "Vijayawada", Market: "Vijayawada Mandi", Commodity: "Rice", Variety: "Sona Masoori", MinPrice: 2850, MaxPrice: 3050, ModalPrice: 2950},
	{State: "Andhra Pradesh", District: "Vijayawada", Market: "Vijayawada Mandi", Commodity: "Tomato", Variety: "Hybrid", MinPrice: 1460, MaxPrice: 1960, ModalPrice: 1710},
	{State: "Andhra Pradesh", District: "Visakhapatnam", Market: "Visakhapatnam Mandi", Commodity: "Rice", Variety: "Ponni", MinPrice: 2720, MaxPrice: 2920, ModalPrice: 2820},
	{State: "Andhra Pradesh", District: "Guntur", Market: "Guntur Mandi", Commodity: "Onion", Variety: "Red", MinPrice: 1190, MaxPrice: 1490, ModalPrice: 1340},

	{State: "Telangana", District: "Hyderabad", Market: "Hyderabad Mandi", Commodity: "Rice", Variety: "Sona Masoori", MinPrice: 2830, MaxPrice: 3030, ModalPrice: 2930},
	{State: "Telangana", District: "Hyderabad", Market: "Hyderabad Mandi", Commodity: "Cotton", Variety: "Medium Staple", MinPrice: 5480, MaxPrice: 5780, ModalPrice: 5630},
	{State: "Telangana", District: "Warangal", Market: "Warangal Mandi", Commodity: "Rice", Variety: "Basmati", MinPrice: 3420, MaxPrice: 3720, ModalPrice: 3570},

	{State: "Kerala", District: "Kochi", Market: "Kochi Mandi", Commodity: "Rice", Variety: "Jaya", MinPrice: 2900, MaxPrice: 3100, ModalPrice: 3000},
	{State: "Kerala", District: "Thiruvananthapuram", Market: "Thiruvananthapuram Mandi", Commodity: "Potato", Variety: "Local", MinPrice: 860, MaxPrice: 1060, ModalPrice: 960},
	{State: "Kerala", District: "Kozhikode", Market: "Kozhikode Mandi", Commodity: "Onion", Variety: "Red", MinPrice: 1240, MaxPrice: 1540, ModalPrice: 1390},

	{State: "Bihar", District: "Patna", Market: "Patna Mandi", Commodity: "Wheat", Variety: "Sharbati", MinPrice: 2005, MaxPrice: 2105, ModalPrice: 2055},
	{State: "Bihar", District: "Patna", Market: "Patna Mandi", Commodity: "Rice", Variety: "Basmati", MinPrice: 3380, MaxPrice: 3680, ModalPrice: 3530},
	{State: "Bihar", District: "Gaya", Market: "Gaya Mandi", Commodity: "Wheat", Variety: "Lokwan", MinPrice: 1995, MaxPrice: 2095, ModalPrice: 2045},
	{State: "Bihar", District: "Muzaffarpur", Market: "Muzaffarpur Mandi", Commodity: "Potato", Variety: "Local", MinPrice: 825, MaxPrice: 1025, ModalPrice: 925},

	{State: "Odisha", District: "Bhubaneswar", Market: "Bhubaneswar Mandi", Commodity: "Rice", Variety: "Swarna", MinPrice: 2650, MaxPrice: 2850, ModalPrice: 2750},
	{State: "Odisha", District: "Cuttack", Market: "Cuttack Mandi", Commodity: "Rice", Variety: "Sona Masoori", MinPrice: 2750, MaxPrice: 2950, ModalPrice: 2850},
	{State: "Odisha", District: "Puri", Market: "Puri Mandi", Commodity: "Onion", Variety: "Red", MinPrice: 1160, MaxPrice: 1460, ModalPrice: 1310},

	{State: "Jharkhand", District: "Ranchi", Market: "Ranchi Mandi", Commodity: "Rice", Variety: "Basmati", MinPrice: 3350, MaxPrice: 3650, ModalPrice: 3500},
	{State: "Jharkhand", District: "Jamshedpur", Market: "Jamshedpur Mandi", Commodity: "Potato", Variety: "Local", MinPrice: 835, MaxPrice: 1035, ModalPrice: 935},

	{State: "Chhattisgarh", District: "Raipur", Market: "Raipur Mandi", Commodity: "Rice", Variety: "Swarna", MinPrice: 2680, MaxPrice: 2880, ModalPrice: 2780},
	{State: "Chhattisgarh", District: "Bilaspur", Market: "Bilaspur Mandi", Commodity: "Wheat", Variety: "Lokwan", MinPrice: 2000, MaxPrice: 2100, ModalPrice: 2050},

	{State: "Assam", District: "Guwahati", Market: "Guwahati Mandi", Commodity: "Rice", Variety: "Joha", MinPrice: 3100, MaxPrice: 3400, ModalPrice: 3250},
	{State: "Assam", District: "Dibrugarh", Market: "Dibrugarh Mandi", Commodity: "Potato", Variety: "Local", MinPrice: 845, MaxPrice: 1045, ModalPrice: 945},

	{State: "Uttarakhand", District: "Dehradun", Market: "Dehradun Mandi", Commodity: "Wheat", Variety: "Sharbati", MinPrice: 2035, MaxPrice: 2135, ModalPrice: 2085},
	{State: "Uttarakhand", District: "Haridwar", Market: "Haridwar Mandi", Commodity: "Rice", Variety: "Basmati", MinPrice: 3430, MaxPrice: 3730, ModalPrice: 3580},

	{State: "Himachal Pradesh", District: "Shimla", Market: "Shimla Mandi", Commodity: "Potato", Variety: "Local", MinPrice: 880, MaxPrice: 1080, ModalPrice: 980},
	{State: "Himachal Pradesh", District: "Mandi", Market: "Mandi Mandi", Commodity: "Wheat", Variety: "Lokwan", MinPrice: 2025, MaxPrice: 2125, ModalPrice: 2075},

	{State: "Jammu and Kashmir", District: "Srinagar", Market: "Srinagar Mandi", Commodity: "Rice", Variety: "Basmati", MinPrice: 3650, MaxPrice: 3950, ModalPrice: 3800},
	{State: "Jammu and Kashmir", District: "Jammu", Market: "Jammu Mandi", Commodity: "Wheat", Variety: "Sharbati", MinPrice: 2045, MaxPrice: 2145, ModalPrice: 2095},

	{State: "Goa", District: "Panaji", Market: "Panaji Mandi", Commodity: "Rice", Variety: "Jaya", MinPrice: 2920, MaxPrice: 3120, ModalPrice: 3020},
	{State: "Goa", District: "Margao", Market: "Margao Mandi", Commodity: "Onion", Variety: "Red", MinPrice: 1260, MaxPrice: 1560, ModalPrice: 1410},
}
