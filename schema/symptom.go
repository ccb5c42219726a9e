package schema

type SymptomType string

const (
	SymptomCollection = "symptoms"
)

const (
	Bloating     SymptomType = "bloating"
	Cramping     SymptomType = "cramping"
	Diarrhea     SymptomType = "diarrhea"
	Constipation SymptomType = "constipation"
	Gas          SymptomType = "gas"
	Nausea       SymptomType = "nausea"
	Reflux       SymptomType = "reflux"
	Fatigue      SymptomType = "fatigue"
	Headache     SymptomType = "headache"
)

type SymptomSource string

const (
	OfficialSymptom   SymptomSource = "official"
	CustomizedSymptom SymptomSource = "customized"
)

type Symptom struct {
	ID     SymptomType   `json:"id" bson:"_id"`
	Name   string        `json:"name" bson:"name"`
	Desc   string        `json:"desc" bson:"desc"`
	Source SymptomSource `json:"-" bson:"source"`
}

// OfficialSymptoms is the built-in gut symptom catalog presented to new users.
var OfficialSymptoms = []Symptom{
	{Bloating, "Bloating", "Visible or felt abdominal distension", OfficialSymptom},
	{Cramping, "Cramping", "Intermittent squeezing abdominal pain", OfficialSymptom},
	{Diarrhea, "Diarrhea", "Loose or watery stools", OfficialSymptom},
	{Constipation, "Constipation", "Infrequent or difficult bowel movements", OfficialSymptom},
	{Gas, "Excess gas", "Frequent flatulence or belching", OfficialSymptom},
	{Nausea, "Nausea", "Queasiness or urge to vomit", OfficialSymptom},
	{Reflux, "Acid reflux", "Heartburn or regurgitation after meals", OfficialSymptom},
	{Fatigue, "Fatigue", "Unusual lack of energy after eating", OfficialSymptom},
	{Headache, "Headache", "Head pain co-occurring with digestive upset", OfficialSymptom},
}
