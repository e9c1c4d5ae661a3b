package catalog

// LevelConfig is the authored configuration for one level: its pass
// mark and the time limit for sitting its exam. Question counts are
// derived (concept count for unit levels, tier policy for bosses);
// concept assignments live in the store. This table is fixed at
// authoring time.
type LevelConfig struct {
	Number           int
	Title            string
	Description      string
	OutcomeStatement string
	TimeLimitMinutes int
	PassMark         float64
	IsBoss           bool
}

// LevelConfigs is the full 40-level curriculum in decade structure:
// nine unit levels then a boss, four decades deep.
var LevelConfigs = []LevelConfig{
	// Levels 1-10: Foundation
	{Number: 1, Title: "Introduction to AI Governance", Description: "Foundation concepts", OutcomeStatement: "What is AI governance, and why does it matter?", TimeLimitMinutes: 20, PassMark: 70},
	{Number: 2, Title: "Core Principles", Description: "Basic governance principles", OutcomeStatement: "What principles should guide responsible AI use?", TimeLimitMinutes: 20, PassMark: 70},
	{Number: 3, Title: "GDPR Fundamentals", Description: "GDPR basics and requirements", OutcomeStatement: "How does data protection law shape AI governance?", TimeLimitMinutes: 20, PassMark: 70},
	{Number: 4, Title: "Data Protection", Description: "Data protection principles", OutcomeStatement: "How should personal data be governed in AI systems?", TimeLimitMinutes: 20, PassMark: 70},
	{Number: 5, Title: "Privacy Rights", Description: "Individual privacy rights", OutcomeStatement: "What rights do individuals have when AI uses their data?", TimeLimitMinutes: 22, PassMark: 70},
	{Number: 6, Title: "AI Act Overview", Description: "EU AI Act introduction", OutcomeStatement: "How does the AI Act change expectations for AI governance?", TimeLimitMinutes: 22, PassMark: 70},
	{Number: 7, Title: "Risk Management", Description: "Risk-based approach", OutcomeStatement: "How do organisations identify and reason about AI risk?", TimeLimitMinutes: 22, PassMark: 70},
	{Number: 8, Title: "Transparency", Description: "Transparency requirements", OutcomeStatement: "What must organisations explain about their AI systems, and to whom?", TimeLimitMinutes: 22, PassMark: 70},
	{Number: 9, Title: "Accountability", Description: "Accountability mechanisms", OutcomeStatement: "Who is accountable for AI decisions, failures, and escalation?", TimeLimitMinutes: 22, PassMark: 70},
	{Number: 10, Title: "Foundation Mastery", Description: "Foundation boss exam", OutcomeStatement: "Can you apply core AI governance principles together in realistic situations?", TimeLimitMinutes: 40, PassMark: 75, IsBoss: true},

	// Levels 11-20: Building
	{Number: 11, Title: "Intermediate Applications", Description: "Applying foundational knowledge", OutcomeStatement: "How do we define and scope AI use cases for governance?", TimeLimitMinutes: 25, PassMark: 70},
	{Number: 12, Title: "Cross-Border Data", Description: "International data transfers", OutcomeStatement: "How does geography and jurisdiction complicate AI governance?", TimeLimitMinutes: 25, PassMark: 70},
	{Number: 13, Title: "AI Act Requirements", Description: "Detailed AI Act obligations", OutcomeStatement: "Given an AI use case, what does the AI Act require us to do?", TimeLimitMinutes: 25, PassMark: 70},
	{Number: 14, Title: "Impact Assessments", Description: "DPIA and AIA requirements", OutcomeStatement: "How do we formally assess and document AI risks before deployment?", TimeLimitMinutes: 25, PassMark: 70},
	{Number: 15, Title: "High-Risk AI Systems", Description: "High-risk AI classification", OutcomeStatement: "What changes when an AI system is classified as high-risk?", TimeLimitMinutes: 25, PassMark: 70},
	{Number: 16, Title: "Algorithmic Accountability", Description: "Accountability in AI systems", OutcomeStatement: "How do we prove our AI governance claims are true?", TimeLimitMinutes: 25, PassMark: 70},
	{Number: 17, Title: "Bias and Fairness", Description: "Addressing AI bias", OutcomeStatement: "How do we govern whether AI systems behave fairly and responsibly?", TimeLimitMinutes: 27, PassMark: 70},
	{Number: 18, Title: "Enforcement Mechanisms", Description: "Regulatory enforcement", OutcomeStatement: "What happens when AI governance obligations are breached?", TimeLimitMinutes: 27, PassMark: 70},
	{Number: 19, Title: "Compliance Frameworks", Description: "Building compliance programs", OutcomeStatement: "How do organisations structure AI governance so it is repeatable, scalable, and defensible?", TimeLimitMinutes: 27, PassMark: 70},
	{Number: 20, Title: "Intermediate Mastery", Description: "Building boss exam", OutcomeStatement: "Can you operate AI governance end-to-end in a real organisation?", TimeLimitMinutes: 45, PassMark: 75, IsBoss: true},

	// Levels 21-30: Advanced
	{Number: 21, Title: "Advanced Scenarios", Description: "Complex real-world scenarios", OutcomeStatement: "How do you govern AI when there is no clear right answer?", TimeLimitMinutes: 27, PassMark: 70},
	{Number: 22, Title: "Multi-Jurisdictional", Description: "Cross-border compliance", OutcomeStatement: "How do you govern AI when different jurisdictions expect different things?", TimeLimitMinutes: 27, PassMark: 70},
	{Number: 23, Title: "Ethical Frameworks", Description: "Ethical AI implementation", OutcomeStatement: "How should we govern AI when legality does not guarantee legitimacy?", TimeLimitMinutes: 28, PassMark: 70},
	{Number: 24, Title: "Regulatory Sandboxes", Description: "Innovation and regulation", OutcomeStatement: "How can organisations innovate with AI while remaining governed and accountable?", TimeLimitMinutes: 28, PassMark: 70},
	{Number: 25, Title: "Case Law Analysis", Description: "Legal precedents and cases", OutcomeStatement: "What do real AI-related cases tell us about how governance fails or succeeds?", TimeLimitMinutes: 28, PassMark: 70},
	{Number: 26, Title: "Governance Models", Description: "Hybrid governance approaches", OutcomeStatement: "How should AI governance be organised inside an organisation?", TimeLimitMinutes: 28, PassMark: 70},
	{Number: 27, Title: "Risk Management Advanced", Description: "Advanced risk strategies", OutcomeStatement: "How do we decide which AI risks to accept, mitigate, escalate, or stop, at scale?", TimeLimitMinutes: 28, PassMark: 70},
	{Number: 28, Title: "Strategic Compliance", Description: "Strategic compliance planning", OutcomeStatement: "How can strong AI compliance strengthen, rather than constrain, the organisation?", TimeLimitMinutes: 28, PassMark: 70},
	{Number: 29, Title: "Emerging Regulations", Description: "New regulatory developments", OutcomeStatement: "How do we govern AI today for regulations that don't fully exist yet?", TimeLimitMinutes: 28, PassMark: 70},
	{Number: 30, Title: "Advanced Mastery", Description: "Advanced boss exam", OutcomeStatement: "Can you design and defend AI governance decisions when rules are incomplete, risks are systemic, and scrutiny is inevitable?", TimeLimitMinutes: 50, PassMark: 80, IsBoss: true},

	// Levels 31-40: Mastery
	{Number: 31, Title: "Expert Synthesis", Description: "Synthesizing complex knowledge", OutcomeStatement: "How do expert practitioners integrate everything they know into sound AI governance judgement?", TimeLimitMinutes: 28, PassMark: 75},
	{Number: 32, Title: "Framework Design", Description: "Designing governance frameworks", OutcomeStatement: "How do you design an AI governance framework that actually works?", TimeLimitMinutes: 30, PassMark: 75},
	{Number: 33, Title: "Real-World Problems", Description: "Complex problem-solving", OutcomeStatement: "How does AI governance actually hold up in the real world?", TimeLimitMinutes: 30, PassMark: 75},
	{Number: 34, Title: "Multi-Domain Integration", Description: "Integrating multiple domains", OutcomeStatement: "How does AI governance fit into the broader governance ecosystem?", TimeLimitMinutes: 30, PassMark: 75},
	{Number: 35, Title: "Strategic Planning", Description: "Strategic AI governance", OutcomeStatement: "How do we plan AI governance over years, not projects?", TimeLimitMinutes: 30, PassMark: 75},
	{Number: 36, Title: "Expert Analysis", Description: "Expert-level analysis", OutcomeStatement: "How do experts evaluate whether AI governance is actually effective?", TimeLimitMinutes: 30, PassMark: 75},
	{Number: 37, Title: "Mastery Integration", Description: "Master-level integration", OutcomeStatement: "What does a fully integrated AI governance mindset look like?", TimeLimitMinutes: 30, PassMark: 75},
	{Number: 38, Title: "Advanced Frameworks", Description: "Advanced framework design", OutcomeStatement: "How do you govern AI when existing frameworks are not enough?", TimeLimitMinutes: 30, PassMark: 75},
	{Number: 39, Title: "Expert Synthesis II", Description: "Final synthesis challenges", OutcomeStatement: "Can you articulate, defend, and consistently apply a complete AI governance philosophy?", TimeLimitMinutes: 35, PassMark: 75},
	{Number: 40, Title: "AI Governance Master", Description: "Terminal boss exam", OutcomeStatement: "Can you be trusted to govern AI at the highest level?", TimeLimitMinutes: 60, PassMark: 85, IsBoss: true},
}

// LevelConfigFor returns the authored config for a level number.
// The second return is false for level numbers outside 1..40.
func LevelConfigFor(n int) (LevelConfig, bool) {
	if n < 1 || n > len(LevelConfigs) {
		return LevelConfig{}, false
	}
	return LevelConfigs[n-1], true
}
