// Package agentfile reads and writes local agent definitions: Markdown
// files with a YAML frontmatter block, or plain YAML manifests. It also
// scans the project and global agent directories and validates manifests.
package agentfile
