package public

// card is a titled blurb used across the informational pages.
type card struct {
	Title       string
	Description string
}

type headlineFigure struct {
	Value string
	Label string
}

var headlineFigures = []headlineFigure{
	{Value: "500+", Label: "Women Empowered"},
	{Value: "120", Label: "Businesses Started"},
	{Value: "1,500+", Label: "Health Screenings"},
	{Value: "95%", Label: "Graduates Still Employed"},
}

var coreValues = []card{
	{Title: "Empowerment", Description: "Every young woman and girl carries real potential."},
	{Title: "Protection", Description: "Safe spaces where girls can heal, grow and thrive."},
	{Title: "Innovation", Description: "Evidence-based approaches that create lasting change."},
	{Title: "Compassion", Description: "Walking alongside beneficiaries with empathy and respect."},
	{Title: "Community", Description: "Networks of support for sustainable transformation."},
	{Title: "Excellence", Description: "Measurable impact and continuous improvement."},
}

var milestones = []card{
	{Title: "2019 LCEO founded", Description: "Established in Bugesera District."},
	{Title: "2020 First program", Description: "Girls school retention reaches 50 beneficiaries."},
	{Title: "2021 IkiraroBiz", Description: "Entrepreneurship program launches with 30 young women."},
	{Title: "2022 Expansion", Description: "Programs scale to more than 200 beneficiaries."},
	{Title: "2024 Recognition", Description: "Partnership with FAWE Rwanda, serving 312 beneficiaries."},
}

var approaches = []card{
	{Title: "Education and School Retention", Description: "School fees, materials, mentoring and safe learning environments."},
	{Title: "SRHR and Menstrual Health", Description: "Reproductive health education, hygiene products and healthcare access."},
	{Title: "Gender and Protection", Description: "Safe spaces and community work against gender-based violence."},
	{Title: "Economic Empowerment", Description: "Skills training, business incubation, seed capital and market links."},
	{Title: "Mental Resilience", Description: "Mindset transformation, psychosocial support and leadership development."},
}

var graduationSteps = []card{
	{Title: "1. Identification", Description: "Community leaders and schools refer girls and young women at risk."},
	{Title: "2. Training", Description: "Business skills, financial literacy and life skills."},
	{Title: "3. Resourcing", Description: "Seed capital and materials to start a business."},
	{Title: "4. Mentorship", Description: "Weekly coaching and progress tracking until graduation."},
}

var sdgGoals = []card{
	{Title: "SDG 1", Description: "No Poverty"},
	{Title: "SDG 3", Description: "Good Health"},
	{Title: "SDG 4", Description: "Quality Education"},
	{Title: "SDG 5", Description: "Gender Equality"},
	{Title: "SDG 8", Description: "Decent Work"},
	{Title: "SDG 10", Description: "Reduced Inequalities"},
}

var changeLevels = []card{
	{Title: "Individual", Description: "Building agency, confidence and skills in girls and young women."},
	{Title: "Relational", Description: "Transforming relationships and social networks."},
	{Title: "Structural", Description: "Addressing systemic barriers and power dynamics."},
}

type resourceGroup struct {
	Heading string
	Items   []string
}

var resourceGroups = []resourceGroup{
	{Heading: "Annual Reports", Items: []string{"2024 Annual Impact Report", "2023 Annual Report", "2022 Year in Review"}},
	{Heading: "Program Guides", Items: []string{"IkiraroBiz Entrepreneurship Model", "Girls School Retention Strategy", "Human Capital Development Framework"}},
	{Heading: "Research", Items: []string{"Pad Box Initiative Case Study", "Gender-Transformative Change in Rwanda", "Economic Empowerment Impact Study"}},
	{Heading: "Media", Items: []string{"LCEO Documentary 2024", "Beneficiary Success Stories", "Program Overview Presentation"}},
}

var waysToHelp = []card{
	{Title: "Join Our Impact Circle", Description: "Become a monthly donor and provide sustained support."},
	{Title: "Make a One-Time Donation", Description: "Every contribution makes a real difference."},
	{Title: "Corporate Partnership", Description: "Amplify your CSR impact with LCEO."},
	{Title: "Volunteer Your Time", Description: "Mentor, train or support our programs."},
	{Title: "Sponsor a Beneficiary", Description: "Directly support one girl's journey."},
	{Title: "Spread the Word", Description: "Share our story in your networks."},
}

var contactDetails = []card{
	{Title: "Location", Description: "Bugesera District, Eastern Province"},
	{Title: "Phone", Description: "+250 788 123 456"},
	{Title: "Email", Description: "info@lceo.org"},
	{Title: "Office Hours", Description: "Monday to Friday, 8:00 AM to 5:00 PM"},
}
