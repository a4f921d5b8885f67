package catalog

// baseControls is the assessed subset of the NIST 800-53 AC family. Order is
// significant: reports iterate controls in this order, which keeps evidence
// concatenation deterministic for a fixed document.
var baseControls = []Control{
	{
		ID:    "AC-1",
		Title: "Access Control Policy and Procedures",
		Definition: "The organization: (A) Develops, documents, and disseminates to designated " +
			"organizational personnel: (a) An access control policy that addresses purpose, scope, " +
			"roles, responsibilities, management commitment, coordination among organizational " +
			"entities, and compliance; and (b) Procedures to facilitate the implementation of the " +
			"access control policy and associated access controls; and (B) Reviews and updates the " +
			"current: (a) Access control policy within every three years; and (b) Access control " +
			"procedures at least annually.",
		AssessmentCriteria: map[string]string{
			"policy_exists":        "A written access control policy is present in the document",
			"policy_scope":         "The policy addresses purpose, scope, roles, responsibilities, and compliance",
			"procedures_exist":     "Procedures for implementing the access control policy are documented",
			"dissemination":        "The policy and procedures are disseminated to designated personnel",
			"review_cycle_defined": "A recurring review and update cycle with explicit timeframes is stated",
		},
	},
	{
		ID:    "AC-2",
		Title: "Account Management",
		Definition: "The organization: (A) Identifies and selects the types of information system " +
			"accounts to support organizational missions and business functions; (B) Assigns account " +
			"managers for information system accounts; (C) Establishes conditions for group and role " +
			"membership; (D) Requires approvals by designated personnel for requests to create " +
			"information system accounts; and (E) Monitors the use of information system accounts.",
		AssessmentCriteria: map[string]string{
			"account_types_defined": "The document enumerates the account types in use",
			"account_managers":      "Responsibility for managing accounts is assigned to named roles",
			"membership_conditions": "Conditions for group and role membership are stated",
			"approval_workflow":     "Account creation requires documented approval",
			"usage_monitoring":      "Account usage is monitored or reviewed",
		},
	},
	{
		ID:    "AC-3",
		Title: "Access Enforcement",
		Definition: "The information system enforces approved authorizations for logical access to " +
			"information and system resources in accordance with applicable access control policies.",
		AssessmentCriteria: map[string]string{
			"enforcement_mechanism": "A technical mechanism that enforces authorizations is described",
			"policy_alignment":      "Enforcement is tied to the documented access control policies",
		},
	},
	{
		ID:    "AC-7",
		Title: "Unsuccessful Logon Attempts",
		Definition: "The information system: (A) Enforces a limit of consecutive invalid logon " +
			"attempts by a user during a defined time period; and (B) Automatically locks the " +
			"account or node for a defined period or until released by an administrator when the " +
			"maximum number of unsuccessful attempts is exceeded.",
		AssessmentCriteria: map[string]string{
			"attempt_limit":   "A maximum number of consecutive failed logon attempts is defined",
			"time_window":     "The time window over which attempts are counted is defined",
			"lockout_action":  "The system response to exceeding the limit is specified",
			"release_process": "How a locked account is released is specified",
		},
	},
	{
		ID:    "AC-17",
		Title: "Remote Access",
		Definition: "The organization: (A) Establishes and documents usage restrictions, " +
			"configuration requirements, and connection requirements for each type of remote access " +
			"allowed; and (B) Authorizes remote access to the information system prior to allowing " +
			"such connections.",
		AssessmentCriteria: map[string]string{
			"remote_types_documented": "Each permitted type of remote access is documented",
			"usage_restrictions":      "Usage restrictions and configuration requirements are stated",
			"prior_authorization":     "Remote access requires authorization before connection",
		},
	},
}
