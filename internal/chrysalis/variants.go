package chrysalis

var variants = []Variant{
	{ID: "chrysalis-001", DayNumber: 1, Name: "Dawn Chrysalis", Theme: Theme{Primary: "#C9731D", Secondary: "#F0D9C2", Accent: "#1F66AD"}, Icon: IconLeaf},
	{ID: "chrysalis-002", DayNumber: 2, Name: "Dawn Wing", Theme: Theme{Primary: "#1DC9A5", Secondary: "#C2F0E6", Accent: "#AD1F3C"}, Icon: IconFlower},
	{ID: "chrysalis-003", DayNumber: 3, Name: "Dawn Drift", Theme: Theme{Primary: "#C91DBA", Secondary: "#F0C2EC", Accent: "#1FAD2B"}, Icon: IconSun},
	{ID: "chrysalis-004", DayNumber: 4, Name: "Dawn Glow", Theme: Theme{Primary: "#88C91D", Secondary: "#DEF0C2", Accent: "#541FAD"}, Icon: IconDroplet},
	{ID: "chrysalis-005", DayNumber: 5, Name: "Dawn Bloom", Theme: Theme{Primary: "#1D56C9", Secondary: "#C2D1F0", Accent: "#AD7E1F"}, Icon: IconFeather},
	{ID: "chrysalis-006", DayNumber: 6, Name: "Dawn Flight", Theme: Theme{Primary: "#C91D24", Secondary: "#F0C2C4", Accent: "#1FADA8"}, Icon: IconStar},
	{ID: "chrysalis-007", DayNumber: 7, Name: "Dawn Crown", Theme: Theme{Primary: "#1DC948", Secondary: "#C2F0CD", Accent: "#AD1F8A"}, Icon: IconWing},
	{ID: "chrysalis-008", DayNumber: 8, Name: "Meadow Chrysalis", Theme: Theme{Primary: "#7A1DC9", Secondary: "#DBC2F0", Accent: "#60AD1F"}, Icon: IconMountain},
	{ID: "chrysalis-009", DayNumber: 9, Name: "Meadow Wing", Theme: Theme{Primary: "#C9AC1D", Secondary: "#F0E8C2", Accent: "#1F36AD"}, Icon: IconMoon},
	{ID: "chrysalis-010", DayNumber: 10, Name: "Meadow Drift", Theme: Theme{Primary: "#1DB3C9", Secondary: "#C2EAF0", Accent: "#AD311F"}, Icon: IconCompass},
	{ID: "chrysalis-011", DayNumber: 11, Name: "Meadow Glow", Theme: Theme{Primary: "#C91D81", Secondary: "#F0C2DD", Accent: "#1FAD5A"}, Icon: IconLeaf},
	{ID: "chrysalis-012", DayNumber: 12, Name: "Meadow Bloom", Theme: Theme{Primary: "#4FC91D", Secondary: "#CFF0C2", Accent: "#841FAD"}, Icon: IconFlower},
	{ID: "chrysalis-013", DayNumber: 13, Name: "Meadow Flight", Theme: Theme{Primary: "#1D1DC9", Secondary: "#C2C2F0", Accent: "#ADAD1F"}, Icon: IconSun},
	{ID: "chrysalis-014", DayNumber: 14, Name: "Meadow Crown", Theme: Theme{Primary: "#C94F1D", Secondary: "#F0CFC2", Accent: "#1F84AD"}, Icon: IconDroplet},
	{ID: "chrysalis-015", DayNumber: 15, Name: "Milkweed Chrysalis", Theme: Theme{Primary: "#1DC981", Secondary: "#C2F0DD", Accent: "#AD1F5A"}, Icon: IconFeather},
	{ID: "chrysalis-016", DayNumber: 16, Name: "Milkweed Wing", Theme: Theme{Primary: "#B41DC9", Secondary: "#EAC2F0", Accent: "#30AD1F"}, Icon: IconStar},
	{ID: "chrysalis-017", DayNumber: 17, Name: "Milkweed Drift", Theme: Theme{Primary: "#ACC91D", Secondary: "#E8F0C2", Accent: "#371FAD"}, Icon: IconWing},
	{ID: "chrysalis-018", DayNumber: 18, Name: "Milkweed Glow", Theme: Theme{Primary: "#1D7AC9", Secondary: "#C2DBF0", Accent: "#AD601F"}, Icon: IconMountain},
	{ID: "chrysalis-019", DayNumber: 19, Name: "Milkweed Bloom", Theme: Theme{Primary: "#C91D47", Secondary: "#F0C2CD", Accent: "#1FAD8A"}, Icon: IconMoon},
	{ID: "chrysalis-020", DayNumber: 20, Name: "Milkweed Flight", Theme: Theme{Primary: "#1DC924", Secondary: "#C2F0C4", Accent: "#AD1FA7"}, Icon: IconCompass},
	{ID: "chrysalis-021", DayNumber: 21, Name: "Milkweed Crown", Theme: Theme{Primary: "#571DC9", Secondary: "#D1C2F0", Accent: "#7DAD1F"}, Icon: IconLeaf},
	{ID: "chrysalis-022", DayNumber: 22, Name: "Goldenrod Chrysalis", Theme: Theme{Primary: "#C9891D", Secondary: "#F0DFC2", Accent: "#1F54AD"}, Icon: IconFlower},
	{ID: "chrysalis-023", DayNumber: 23, Name: "Goldenrod Wing", Theme: Theme{Primary: "#1DC9BB", Secondary: "#C2F0EC", Accent: "#AD1F2A"}, Icon: IconSun},
	{ID: "chrysalis-024", DayNumber: 24, Name: "Goldenrod Drift", Theme: Theme{Primary: "#C91DA4", Secondary: "#F0C2E6", Accent: "#1FAD3D"}, Icon: IconDroplet},
	{ID: "chrysalis-025", DayNumber: 25, Name: "Goldenrod Glow", Theme: Theme{Primary: "#72C91D", Secondary: "#D9F0C2", Accent: "#661FAD"}, Icon: IconFeather},
	{ID: "chrysalis-026", DayNumber: 26, Name: "Goldenrod Bloom", Theme: Theme{Primary: "#1D40C9", Secondary: "#C2CBF0", Accent: "#AD901F"}, Icon: IconStar},
	{ID: "chrysalis-027", DayNumber: 27, Name: "Goldenrod Flight", Theme: Theme{Primary: "#C92C1D", Secondary: "#F0C6C2", Accent: "#1FA1AD"}, Icon: IconWing},
	{ID: "chrysalis-028", DayNumber: 28, Name: "Goldenrod Crown", Theme: Theme{Primary: "#1DC95E", Secondary: "#C2F0D3", Accent: "#AD1F77"}, Icon: IconMountain},
	{ID: "chrysalis-029", DayNumber: 29, Name: "Prairie Chrysalis", Theme: Theme{Primary: "#901DC9", Secondary: "#E1C2F0", Accent: "#4EAD1F"}, Icon: IconMoon},
	{ID: "chrysalis-030", DayNumber: 30, Name: "Prairie Wing", Theme: Theme{Primary: "#C9C21D", Secondary: "#F0EEC2", Accent: "#1F24AD"}, Icon: IconCompass},
	{ID: "chrysalis-031", DayNumber: 31, Name: "Prairie Drift", Theme: Theme{Primary: "#1D9DC9", Secondary: "#C2E4F0", Accent: "#AD431F"}, Icon: IconLeaf},
	{ID: "chrysalis-032", DayNumber: 32, Name: "Prairie Glow", Theme: Theme{Primary: "#C91D6B", Secondary: "#F0C2D7", Accent: "#1FAD6D"}, Icon: IconFlower},
	{ID: "chrysalis-033", DayNumber: 33, Name: "Prairie Bloom", Theme: Theme{Primary: "#39C91D", Secondary: "#C9F0C2", Accent: "#961FAD"}, Icon: IconSun},
	{ID: "chrysalis-034", DayNumber: 34, Name: "Prairie Flight", Theme: Theme{Primary: "#331DC9", Secondary: "#C8C2F0", Accent: "#9BAD1F"}, Icon: IconDroplet},
	{ID: "chrysalis-035", DayNumber: 35, Name: "Prairie Crown", Theme: Theme{Primary: "#C9651D", Secondary: "#F0D5C2", Accent: "#1F71AD"}, Icon: IconFeather},
	{ID: "chrysalis-036", DayNumber: 36, Name: "Sunlit Chrysalis", Theme: Theme{Primary: "#1DC997", Secondary: "#C2F0E3", Accent: "#AD1F48"}, Icon: IconStar},
	{ID: "chrysalis-037", DayNumber: 37, Name: "Sunlit Wing", Theme: Theme{Primary: "#C91DC8", Secondary: "#F0C2EF", Accent: "#1FAD1F"}, Icon: IconWing},
	{ID: "chrysalis-038", DayNumber: 38, Name: "Sunlit Drift", Theme: Theme{Primary: "#96C91D", Secondary: "#E2F0C2", Accent: "#491FAD"}, Icon: IconMountain},
	{ID: "chrysalis-039", DayNumber: 39, Name: "Sunlit Glow", Theme: Theme{Primary: "#1D64C9", Secondary: "#C2D5F0", Accent: "#AD731F"}, Icon: IconMoon},
	{ID: "chrysalis-040", DayNumber: 40, Name: "Sunlit Bloom", Theme: Theme{Primary: "#C91D31", Secondary: "#F0C2C7", Accent: "#1FAD9C"}, Icon: IconCompass},
	{ID: "chrysalis-041", DayNumber: 41, Name: "Sunlit Flight", Theme: Theme{Primary: "#1DC93A", Secondary: "#C2F0CA", Accent: "#AD1F95"}, Icon: IconLeaf},
	{ID: "chrysalis-042", DayNumber: 42, Name: "Sunlit Crown", Theme: Theme{Primary: "#6D1DC9", Secondary: "#D7C2F0", Accent: "#6BAD1F"}, Icon: IconFlower},
	{ID: "chrysalis-043", DayNumber: 43, Name: "Amber Chrysalis", Theme: Theme{Primary: "#C99F1D", Secondary: "#F0E4C2", Accent: "#1F42AD"}, Icon: IconSun},
	{ID: "chrysalis-044", DayNumber: 44, Name: "Amber Wing", Theme: Theme{Primary: "#1DC1C9", Secondary: "#C2EEF0", Accent: "#AD251F"}, Icon: IconDroplet},
	{ID: "chrysalis-045", DayNumber: 45, Name: "Amber Drift", Theme: Theme{Primary: "#C91D8E", Secondary: "#F0C2E0", Accent: "#1FAD4F"}, Icon: IconFeather},
	{ID: "chrysalis-046", DayNumber: 46, Name: "Amber Glow", Theme: Theme{Primary: "#5CC91D", Secondary: "#D3F0C2", Accent: "#791FAD"}, Icon: IconStar},
	{ID: "chrysalis-047", DayNumber: 47, Name: "Amber Bloom", Theme: Theme{Primary: "#1D2AC9", Secondary: "#C2C5F0", Accent: "#ADA21F"}, Icon: IconWing},
	{ID: "chrysalis-048", DayNumber: 48, Name: "Amber Flight", Theme: Theme{Primary: "#C9421D", Secondary: "#F0CCC2", Accent: "#1F8FAD"}, Icon: IconMountain},
	{ID: "chrysalis-049", DayNumber: 49, Name: "Amber Crown", Theme: Theme{Primary: "#1DC974", Secondary: "#C2F0D9", Accent: "#AD1F65"}, Icon: IconMoon},
	{ID: "chrysalis-050", DayNumber: 50, Name: "Ember Chrysalis", Theme: Theme{Primary: "#A61DC9", Secondary: "#E6C2F0", Accent: "#3BAD1F"}, Icon: IconCompass},
	{ID: "chrysalis-051", DayNumber: 51, Name: "Ember Wing", Theme: Theme{Primary: "#B9C91D", Secondary: "#ECF0C2", Accent: "#2B1FAD"}, Icon: IconLeaf},
	{ID: "chrysalis-052", DayNumber: 52, Name: "Ember Drift", Theme: Theme{Primary: "#1D87C9", Secondary: "#C2DEF0", Accent: "#AD551F"}, Icon: IconFlower},
	{ID: "chrysalis-053", DayNumber: 53, Name: "Ember Glow", Theme: Theme{Primary: "#C91D55", Secondary: "#F0C2D1", Accent: "#1FAD7F"}, Icon: IconSun},
	{ID: "chrysalis-054", DayNumber: 54, Name: "Ember Bloom", Theme: Theme{Primary: "#23C91D", Secondary: "#C3F0C2", Accent: "#A81FAD"}, Icon: IconDroplet},
	{ID: "chrysalis-055", DayNumber: 55, Name: "Ember Flight", Theme: Theme{Primary: "#491DC9", Secondary: "#CEC2F0", Accent: "#89AD1F"}, Icon: IconFeather},
	{ID: "chrysalis-056", DayNumber: 56, Name: "Ember Crown", Theme: Theme{Primary: "#C97B1D", Secondary: "#F0DBC2", Accent: "#1F5FAD"}, Icon: IconStar},
	{ID: "chrysalis-057", DayNumber: 57, Name: "Dusk Chrysalis", Theme: Theme{Primary: "#1DC9AD", Secondary: "#C2F0E8", Accent: "#AD1F35"}, Icon: IconWing},
	{ID: "chrysalis-058", DayNumber: 58, Name: "Dusk Wing", Theme: Theme{Primary: "#C91DB2", Secondary: "#F0C2EA", Accent: "#1FAD32"}, Icon: IconMountain},
	{ID: "chrysalis-059", DayNumber: 59, Name: "Dusk Drift", Theme: Theme{Primary: "#80C91D", Secondary: "#DCF0C2", Accent: "#5B1FAD"}, Icon: IconMoon},
	{ID: "chrysalis-060", DayNumber: 60, Name: "Dusk Glow", Theme: Theme{Primary: "#1D4EC9", Secondary: "#C2CFF0", Accent: "#AD851F"}, Icon: IconCompass},
	{ID: "chrysalis-061", DayNumber: 61, Name: "Dusk Bloom", Theme: Theme{Primary: "#C91E1D", Secondary: "#F0C2C2", Accent: "#1FACAD"}, Icon: IconLeaf},
	{ID: "chrysalis-062", DayNumber: 62, Name: "Dusk Flight", Theme: Theme{Primary: "#1DC950", Secondary: "#C2F0D0", Accent: "#AD1F83"}, Icon: IconFlower},
	{ID: "chrysalis-063", DayNumber: 63, Name: "Dusk Crown", Theme: Theme{Primary: "#831DC9", Secondary: "#DDC2F0", Accent: "#59AD1F"}, Icon: IconSun},
	{ID: "chrysalis-064", DayNumber: 64, Name: "Harvest Chrysalis", Theme: Theme{Primary: "#C9B51D", Secondary: "#F0EAC2", Accent: "#1F2FAD"}, Icon: IconDroplet},
	{ID: "chrysalis-065", DayNumber: 65, Name: "Harvest Wing", Theme: Theme{Primary: "#1DABC9", Secondary: "#C2E8F0", Accent: "#AD381F"}, Icon: IconFeather},
	{ID: "chrysalis-066", DayNumber: 66, Name: "Harvest Drift", Theme: Theme{Primary: "#C91D78", Secondary: "#F0C2DA", Accent: "#1FAD61"}, Icon: IconStar},
	{ID: "chrysalis-067", DayNumber: 67, Name: "Harvest Glow", Theme: Theme{Primary: "#46C91D", Secondary: "#CDF0C2", Accent: "#8B1FAD"}, Icon: IconWing},
	{ID: "chrysalis-068", DayNumber: 68, Name: "Harvest Bloom", Theme: Theme{Primary: "#251DC9", Secondary: "#C4C2F0", Accent: "#A6AD1F"}, Icon: IconMountain},
	{ID: "chrysalis-069", DayNumber: 69, Name: "Harvest Flight", Theme: Theme{Primary: "#C9581D", Secondary: "#F0D2C2", Accent: "#1F7DAD"}, Icon: IconMoon},
	{ID: "chrysalis-070", DayNumber: 70, Name: "Harvest Crown", Theme: Theme{Primary: "#1DC98A", Secondary: "#C2F0DF", Accent: "#AD1F53"}, Icon: IconCompass},
	{ID: "chrysalis-071", DayNumber: 71, Name: "Monarch Chrysalis", Theme: Theme{Primary: "#BC1DC9", Secondary: "#ECC2F0", Accent: "#29AD1F"}, Icon: IconLeaf},
	{ID: "chrysalis-072", DayNumber: 72, Name: "Monarch Wing", Theme: Theme{Primary: "#A3C91D", Secondary: "#E6F0C2", Accent: "#3E1FAD"}, Icon: IconFlower},
	{ID: "chrysalis-073", DayNumber: 73, Name: "Monarch Drift", Theme: Theme{Primary: "#1D71C9", Secondary: "#C2D8F0", Accent: "#AD671F"}, Icon: IconSun},
	{ID: "chrysalis-074", DayNumber: 74, Name: "Monarch Glow", Theme: Theme{Primary: "#C91D3F", Secondary: "#F0C2CB", Accent: "#1FAD91"}, Icon: IconDroplet},
	{ID: "chrysalis-075", DayNumber: 75, Name: "Monarch Bloom", Theme: Theme{Primary: "#1DC92D", Secondary: "#C2F0C6", Accent: "#AD1FA0"}, Icon: IconFeather},
	{ID: "chrysalis-076", DayNumber: 76, Name: "Monarch Flight", Theme: Theme{Primary: "#5F1DC9", Secondary: "#D3C2F0", Accent: "#76AD1F"}, Icon: IconStar},
	{ID: "chrysalis-077", DayNumber: 77, Name: "Monarch Crown", Theme: Theme{Primary: "#C9911D", Secondary: "#F0E1C2", Accent: "#1F4DAD"}, Icon: IconWing},
	{ID: "chrysalis-078", DayNumber: 78, Name: "Aster Chrysalis", Theme: Theme{Primary: "#1DC9C3", Secondary: "#C2F0EE", Accent: "#AD1F23"}, Icon: IconMountain},
	{ID: "chrysalis-079", DayNumber: 79, Name: "Aster Wing", Theme: Theme{Primary: "#C91D9C", Secondary: "#F0C2E4", Accent: "#1FAD44"}, Icon: IconMoon},
	{ID: "chrysalis-080", DayNumber: 80, Name: "Aster Drift", Theme: Theme{Primary: "#6AC91D", Secondary: "#D6F0C2", Accent: "#6D1FAD"}, Icon: IconCompass},
	{ID: "chrysalis-081", DayNumber: 81, Name: "Aster Glow", Theme: Theme{Primary: "#1D38C9", Secondary: "#C2C9F0", Accent: "#AD971F"}, Icon: IconLeaf},
	{ID: "chrysalis-082", DayNumber: 82, Name: "Aster Bloom", Theme: Theme{Primary: "#C9341D", Secondary: "#F0C8C2", Accent: "#1F9AAD"}, Icon: IconFlower},
	{ID: "chrysalis-083", DayNumber: 83, Name: "Aster Flight", Theme: Theme{Primary: "#1DC966", Secondary: "#C2F0D5", Accent: "#AD1F70"}, Icon: IconSun},
	{ID: "chrysalis-084", DayNumber: 84, Name: "Aster Crown", Theme: Theme{Primary: "#991DC9", Secondary: "#E3C2F0", Accent: "#47AD1F"}, Icon: IconDroplet},
	{ID: "chrysalis-085", DayNumber: 85, Name: "Clover Chrysalis", Theme: Theme{Primary: "#C7C91D", Secondary: "#EFF0C2", Accent: "#201FAD"}, Icon: IconFeather},
	{ID: "chrysalis-086", DayNumber: 86, Name: "Clover Wing", Theme: Theme{Primary: "#1D95C9", Secondary: "#C2E2F0", Accent: "#AD4A1F"}, Icon: IconStar},
	{ID: "chrysalis-087", DayNumber: 87, Name: "Clover Drift", Theme: Theme{Primary: "#C91D62", Secondary: "#F0C2D4", Accent: "#1FAD74"}, Icon: IconWing},
	{ID: "chrysalis-088", DayNumber: 88, Name: "Clover Glow", Theme: Theme{Primary: "#30C91D", Secondary: "#C7F0C2", Accent: "#9D1FAD"}, Icon: IconMountain},
	{ID: "chrysalis-089", DayNumber: 89, Name: "Clover Bloom", Theme: Theme{Primary: "#3B1DC9", Secondary: "#CAC2F0", Accent: "#94AD1F"}, Icon: IconMoon},
	{ID: "chrysalis-090", DayNumber: 90, Name: "Clover Flight", Theme: Theme{Primary: "#C96E1D", Secondary: "#F0D7C2", Accent: "#1F6AAD"}, Icon: IconCompass},
	{ID: "chrysalis-091", DayNumber: 91, Name: "Clover Crown", Theme: Theme{Primary: "#1DC9A0", Secondary: "#C2F0E5", Accent: "#AD1F41"}, Icon: IconLeaf},
	{ID: "chrysalis-092", DayNumber: 92, Name: "River Chrysalis", Theme: Theme{Primary: "#C91DC0", Secondary: "#F0C2ED", Accent: "#1FAD26"}, Icon: IconFlower},
	{ID: "chrysalis-093", DayNumber: 93, Name: "River Wing", Theme: Theme{Primary: "#8DC91D", Secondary: "#E0F0C2", Accent: "#501FAD"}, Icon: IconSun},
	{ID: "chrysalis-094", DayNumber: 94, Name: "River Drift", Theme: Theme{Primary: "#1D5BC9", Secondary: "#C2D2F0", Accent: "#AD7A1F"}, Icon: IconDroplet},
	{ID: "chrysalis-095", DayNumber: 95, Name: "River Glow", Theme: Theme{Primary: "#C91D29", Secondary: "#F0C2C5", Accent: "#1FADA3"}, Icon: IconFeather},
	{ID: "chrysalis-096", DayNumber: 96, Name: "River Bloom", Theme: Theme{Primary: "#1DC943", Secondary: "#C2F0CC", Accent: "#AD1F8E"}, Icon: IconStar},
	{ID: "chrysalis-097", DayNumber: 97, Name: "River Flight", Theme: Theme{Primary: "#751DC9", Secondary: "#D9C2F0", Accent: "#64AD1F"}, Icon: IconWing},
	{ID: "chrysalis-098", DayNumber: 98, Name: "River Crown", Theme: Theme{Primary: "#C9A71D", Secondary: "#F0E7C2", Accent: "#1F3BAD"}, Icon: IconMountain},
	{ID: "chrysalis-099", DayNumber: 99, Name: "Cedar Chrysalis", Theme: Theme{Primary: "#1DB8C9", Secondary: "#C2EBF0", Accent: "#AD2C1F"}, Icon: IconMoon},
	{ID: "chrysalis-100", DayNumber: 100, Name: "Cedar Wing", Theme: Theme{Primary: "#C91D86", Secondary: "#F0C2DE", Accent: "#1FAD56"}, Icon: IconCompass},
	{ID: "chrysalis-101", DayNumber: 101, Name: "Cedar Drift", Theme: Theme{Primary: "#54C91D", Secondary: "#D0F0C2", Accent: "#801FAD"}, Icon: IconLeaf},
	{ID: "chrysalis-102", DayNumber: 102, Name: "Cedar Glow", Theme: Theme{Primary: "#1D22C9", Secondary: "#C2C3F0", Accent: "#ADA91F"}, Icon: IconFlower},
	{ID: "chrysalis-103", DayNumber: 103, Name: "Cedar Bloom", Theme: Theme{Primary: "#C94A1D", Secondary: "#F0CEC2", Accent: "#1F88AD"}, Icon: IconSun},
	{ID: "chrysalis-104", DayNumber: 104, Name: "Cedar Flight", Theme: Theme{Primary: "#1DC97C", Secondary: "#C2F0DB", Accent: "#AD1F5E"}, Icon: IconDroplet},
	{ID: "chrysalis-105", DayNumber: 105, Name: "Cedar Crown", Theme: Theme{Primary: "#AF1DC9", Secondary: "#E9C2F0", Accent: "#34AD1F"}, Icon: IconFeather},
	{ID: "chrysalis-106", DayNumber: 106, Name: "Sage Chrysalis", Theme: Theme{Primary: "#B1C91D", Secondary: "#E9F0C2", Accent: "#321FAD"}, Icon: IconStar},
	{ID: "chrysalis-107", DayNumber: 107, Name: "Sage Wing", Theme: Theme{Primary: "#1D7FC9", Secondary: "#C2DCF0", Accent: "#AD5C1F"}, Icon: IconWing},
	{ID: "chrysalis-108", DayNumber: 108, Name: "Sage Drift", Theme: Theme{Primary: "#C91D4C", Secondary: "#F0C2CF", Accent: "#1FAD86"}, Icon: IconMountain},
	{ID: "chrysalis-109", DayNumber: 109, Name: "Sage Glow", Theme: Theme{Primary: "#1DC91F", Secondary: "#C2F0C2", Accent: "#AD1FAB"}, Icon: IconMoon},
	{ID: "chrysalis-110", DayNumber: 110, Name: "Sage Bloom", Theme: Theme{Primary: "#511DC9", Secondary: "#D0C2F0", Accent: "#82AD1F"}, Icon: IconCompass},
	{ID: "chrysalis-111", DayNumber: 111, Name: "Sage Flight", Theme: Theme{Primary: "#C9841D", Secondary: "#F0DDC2", Accent: "#1F58AD"}, Icon: IconLeaf},
	{ID: "chrysalis-112", DayNumber: 112, Name: "Sage Crown", Theme: Theme{Primary: "#1DC9B6", Secondary: "#C2F0EB", Accent: "#AD1F2E"}, Icon: IconFlower},
	{ID: "chrysalis-113", DayNumber: 113, Name: "Velvet Chrysalis", Theme: Theme{Primary: "#C91DAA", Secondary: "#F0C2E7", Accent: "#1FAD39"}, Icon: IconSun},
	{ID: "chrysalis-114", DayNumber: 114, Name: "Velvet Wing", Theme: Theme{Primary: "#77C91D", Secondary: "#DAF0C2", Accent: "#621FAD"}, Icon: IconDroplet},
	{ID: "chrysalis-115", DayNumber: 115, Name: "Velvet Drift", Theme: Theme{Primary: "#1D45C9", Secondary: "#C2CDF0", Accent: "#AD8C1F"}, Icon: IconFeather},
	{ID: "chrysalis-116", DayNumber: 116, Name: "Velvet Glow", Theme: Theme{Primary: "#C9261D", Secondary: "#F0C4C2", Accent: "#1FA5AD"}, Icon: IconStar},
	{ID: "chrysalis-117", DayNumber: 117, Name: "Velvet Bloom", Theme: Theme{Primary: "#1DC959", Secondary: "#C2F0D2", Accent: "#AD1F7C"}, Icon: IconWing},
	{ID: "chrysalis-118", DayNumber: 118, Name: "Velvet Flight", Theme: Theme{Primary: "#8B1DC9", Secondary: "#DFC2F0", Accent: "#52AD1F"}, Icon: IconMountain},
	{ID: "chrysalis-119", DayNumber: 119, Name: "Velvet Crown", Theme: Theme{Primary: "#C9BD1D", Secondary: "#F0EDC2", Accent: "#1F28AD"}, Icon: IconMoon},
	{ID: "chrysalis-120", DayNumber: 120, Name: "Coral Chrysalis", Theme: Theme{Primary: "#1DA2C9", Secondary: "#C2E5F0", Accent: "#AD3F1F"}, Icon: IconCompass},
	{ID: "chrysalis-121", DayNumber: 121, Name: "Coral Wing", Theme: Theme{Primary: "#C91D70", Secondary: "#F0C2D8", Accent: "#1FAD68"}, Icon: IconLeaf},
	{ID: "chrysalis-122", DayNumber: 122, Name: "Coral Drift", Theme: Theme{Primary: "#3EC91D", Secondary: "#CBF0C2", Accent: "#921FAD"}, Icon: IconFlower},
	{ID: "chrysalis-123", DayNumber: 123, Name: "Coral Glow", Theme: Theme{Primary: "#2E1DC9", Secondary: "#C6C2F0", Accent: "#9FAD1F"}, Icon: IconSun},
	{ID: "chrysalis-124", DayNumber: 124, Name: "Coral Bloom", Theme: Theme{Primary: "#C9601D", Secondary: "#F0D4C2", Accent: "#1F76AD"}, Icon: IconDroplet},
	{ID: "chrysalis-125", DayNumber: 125, Name: "Coral Flight", Theme: Theme{Primary: "#1DC992", Secondary: "#C2F0E1", Accent: "#AD1F4C"}, Icon: IconFeather},
	{ID: "chrysalis-126", DayNumber: 126, Name: "Coral Crown", Theme: Theme{Primary: "#C51DC9", Secondary: "#EFC2F0", Accent: "#22AD1F"}, Icon: IconStar},
	{ID: "chrysalis-127", DayNumber: 127, Name: "Twilight Chrysalis", Theme: Theme{Primary: "#9BC91D", Secondary: "#E3F0C2", Accent: "#451FAD"}, Icon: IconWing},
	{ID: "chrysalis-128", DayNumber: 128, Name: "Twilight Wing", Theme: Theme{Primary: "#1D69C9", Secondary: "#C2D6F0", Accent: "#AD6E1F"}, Icon: IconMountain},
	{ID: "chrysalis-129", DayNumber: 129, Name: "Twilight Drift", Theme: Theme{Primary: "#C91D36", Secondary: "#F0C2C9", Accent: "#1FAD98"}, Icon: IconMoon},
	{ID: "chrysalis-130", DayNumber: 130, Name: "Twilight Glow", Theme: Theme{Primary: "#1DC935", Secondary: "#C2F0C8", Accent: "#AD1F99"}, Icon: IconCompass},
	{ID: "chrysalis-131", DayNumber: 131, Name: "Twilight Bloom", Theme: Theme{Primary: "#671DC9", Secondary: "#D6C2F0", Accent: "#6FAD1F"}, Icon: IconLeaf},
	{ID: "chrysalis-132", DayNumber: 132, Name: "Twilight Flight", Theme: Theme{Primary: "#C99A1D", Secondary: "#F0E3C2", Accent: "#1F46AD"}, Icon: IconFlower},
	{ID: "chrysalis-133", DayNumber: 133, Name: "Twilight Crown", Theme: Theme{Primary: "#1DC6C9", Secondary: "#C2EFF0", Accent: "#AD211F"}, Icon: IconSun},
}
